package presence

import (
	"encoding/base64"
	"fmt"
	"log/slog"
	"os"

	"github.com/bwmarrin/discordgo"
	"github.com/h2non/filetype"
	"github.com/pkg/errors"
)

type Discord struct {
	session *discordgo.Session
}

// NewDiscord authenticates the bot and opens its gateway session. This is
// the one external handshake that may fail the process at startup.
func NewDiscord(token string) (*Discord, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, errors.Wrap(err, "creating discord session")
	}

	if err := session.Open(); err != nil {
		return nil, errors.Wrap(err, "opening discord gateway")
	}
	slog.Info("Logged in to Discord", "user", session.State.User.Username)

	return &Discord{session: session}, nil
}

func (d *Discord) SetStatusText(text string) error {
	if err := d.session.UpdateGameStatus(0, text); err != nil {
		return &PublishError{Op: "status", Err: err}
	}
	return nil
}

func (d *Discord) SetAvatarImage(path string) error {
	img, err := os.ReadFile(path)
	if err != nil {
		return &PublishError{Op: "avatar", Err: err}
	}
	if _, err := d.session.UserUpdate("", avatarDataURI(img)); err != nil {
		return &PublishError{Op: "avatar", Err: err}
	}
	return nil
}

func (d *Discord) Close() error {
	return d.session.Close()
}

// avatarDataURI encodes image bytes the way the profile API expects them,
// sniffing the MIME type from the content.
func avatarDataURI(img []byte) string {
	mime := "image/jpeg"
	if kind, _ := filetype.Match(img); kind != filetype.Unknown {
		mime = kind.MIME.Value
	}
	return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(img))
}

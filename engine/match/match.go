// Package match picks the monitored server out of a polled list and resolves
// its raw map and mode keys for presentation.
package match

import (
	"fmt"

	"marnewatch/engine/gamedata"
	"marnewatch/engine/marne"
)

// NotFoundError reports that no list entry matched the target.
type NotFoundError struct {
	Target Target
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no server in list matched %s", e.Target)
}

// Select returns the first server in list order the target matches.
func Select(list marne.ServerList, target Target) (marne.ServerInfo, error) {
	for _, server := range list.Servers {
		if target.matches(server) {
			return server, nil
		}
	}
	return marne.ServerInfo{}, &NotFoundError{Target: target}
}

// Resolved carries the presentation values for a matched server.
type Resolved struct {
	DisplayName      string
	ImageURL         string
	ModeAbbreviation string
}

// Resolve looks the server's map and mode keys up in the static tables. The
// map key arrives either bare or as a slash-delimited asset path whose final
// segment is the key.
func Resolve(server marne.ServerInfo, tables *gamedata.Tables) Resolved {
	key := gamedata.CanonicalMapKey(server.MapName)
	return Resolved{
		DisplayName:      tables.MapDisplayName(key),
		ImageURL:         tables.MapImageURL(key),
		ModeAbbreviation: tables.ModeAbbreviation(server.GameMode),
	}
}

package marne

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

const sampleList = `{"servers":[{"id":7,"name":"Alpha","mapName":"MP_Amiens","gameMode":"Conquest0","maxPlayers":64,"currentPlayers":40,"region":"EU","country":"DE"}]}`

func TestListURL(t *testing.T) {
	tests := []struct {
		name     string
		game     string
		expected string
	}{
		{
			name:     "bf1",
			game:     "bf1",
			expected: "https://marne.io/api/srvlst/",
		},
		{
			name:     "bfv",
			game:     "bfv",
			expected: "https://marne.io/api/v/srvlst/",
		},
		{
			name:     "unknown falls back to bf1",
			game:     "bf2042",
			expected: "https://marne.io/api/srvlst/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ListURL(tt.game))
		})
	}
}

func TestFetch(t *testing.T) {
	tests := []struct {
		name string
		body []byte
	}{
		{
			name: "clean payload",
			body: []byte(sampleList),
		},
		{
			name: "bom prefixed payload",
			body: append([]byte{0xEF, 0xBB, 0xBF}, []byte(sampleList)...),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.NotEmpty(t, r.Header.Get("User-Agent"))
				w.Write(tt.body)
			}))
			defer ts.Close()

			client := &Client{URL: ts.URL, HTTP: ts.Client()}
			list, err := client.Fetch()
			require.NoError(t, err)
			require.Len(t, list.Servers, 1)

			server := list.Servers[0]
			assert.Equal(t, int64(7), server.ID)
			assert.Equal(t, "Alpha", server.Name)
			assert.Equal(t, "MP_Amiens", server.MapName)
			assert.Equal(t, "Conquest0", server.GameMode)
			assert.Equal(t, 64, server.MaxPlayers)
			assert.Equal(t, 40, server.CurrentPlayers)
		})
	}
}

func TestFetchIgnoresExtraFields(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"servers":[{"id":1,"name":"Alpha","mapName":"MP_Amiens","gameMode":"Conquest0","maxPlayers":64,"currentPlayers":40,"region":"EU","country":"DE","tickRate":60,"password":0,"needSameMods":0,"allowMoreMods":1}]}`))
	}))
	defer ts.Close()

	client := &Client{URL: ts.URL, HTTP: ts.Client()}
	list, err := client.Fetch()
	require.NoError(t, err)
	require.Len(t, list.Servers, 1)
	assert.Equal(t, "Alpha", list.Servers[0].Name)
}

func TestFetchParseError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>upstream error</html>"))
	}))
	defer ts.Close()

	client := &Client{URL: ts.URL, HTTP: ts.Client()}
	_, err := client.Fetch()
	require.Error(t, err)

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "<html>upstream error</html>", parseErr.Raw)
}

func TestFetchNetworkError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close()

	client := &Client{URL: ts.URL, HTTP: &http.Client{}}
	_, err := client.Fetch()
	require.Error(t, err)

	var netErr *NetworkError
	require.True(t, errors.As(err, &netErr))
	assert.Equal(t, ts.URL, netErr.URL)
}

func TestStripBOM(t *testing.T) {
	tests := []struct {
		name     string
		body     []byte
		expected []byte
	}{
		{
			name:     "bom stripped",
			body:     []byte{0xEF, 0xBB, 0xBF, '{', '}'},
			expected: []byte{'{', '}'},
		},
		{
			name:     "clean body untouched",
			body:     []byte(`{"servers":[]}`),
			expected: []byte(`{"servers":[]}`),
		},
		{
			name:     "empty body untouched",
			body:     []byte{},
			expected: []byte{},
		},
		{
			name:     "short body untouched",
			body:     []byte{0xEF, 0xBB},
			expected: []byte{0xEF, 0xBB},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, stripBOM(tt.body))
		})
	}
}

// TestPropertyStripBOMCleanNoOp verifies payloads that do not open with the
// marker byte pass through stripBOM unchanged, however many times it runs.
func TestPropertyStripBOMCleanNoOp(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		body := rapid.SliceOf(rapid.Byte()).Draw(t, "body")
		if len(body) > 0 && body[0] == 0xEF {
			body[0] = '{'
		}

		once := stripBOM(body)
		assert.Equal(t, body, once)
		assert.Equal(t, once, stripBOM(once))
	})
}

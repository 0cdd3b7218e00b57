package watchlist

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sdnServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestOFACLoaderHeaderFormat(t *testing.T) {
	body := strings.Join([]string{
		"ent_num,SDN_Name,SDN_Type,Program",
		`1,"AEROCARIBBEAN AIRLINES",Entity,CUBA`,
		`2,"John Smith",Individual,SDGT`,
		`2,"John Smith",Individual,SDGT`,
	}, "\n")
	server := sdnServer(t, http.StatusOK, body)

	loader := NewOFACLoader(server.URL, server.Client())
	names, err := loader.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"AEROCARIBBEAN AIRLINES", "John Smith"}, names)
	assert.Equal(t, SourceOFAC, loader.Source())
}

func TestOFACLoaderLegacyHeaderlessFormat(t *testing.T) {
	body := strings.Join([]string{
		`36,"AEROCARIBBEAN AIRLINES","Entity","CUBA"`,
		`173,"ANGLO-CARIBBEAN CO., LTD.","Entity","CUBA"`,
	}, "\n")
	server := sdnServer(t, http.StatusOK, body)

	loader := NewOFACLoader(server.URL, server.Client())
	names, err := loader.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"AEROCARIBBEAN AIRLINES", "ANGLO-CARIBBEAN CO., LTD."}, names)
}

func TestOFACLoaderUnknownShape(t *testing.T) {
	server := sdnServer(t, http.StatusOK, "uid,label\nx,y\n")

	loader := NewOFACLoader(server.URL, server.Client())
	_, err := loader.Load(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Contains(t, err.Error(), "name column not found")
}

func TestOFACLoaderHTTPFailure(t *testing.T) {
	server := sdnServer(t, http.StatusServiceUnavailable, "")

	loader := NewOFACLoader(server.URL, server.Client())
	_, err := loader.Load(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestOFACLoaderEmptyFile(t *testing.T) {
	server := sdnServer(t, http.StatusOK, "")

	loader := NewOFACLoader(server.URL, server.Client())
	_, err := loader.Load(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestSDNSchemaDetection(t *testing.T) {
	tests := []struct {
		name      string
		first     []string
		col       int
		skipFirst bool
		ok        bool
	}{
		{name: "sdn_name header", first: []string{"ent_num", "SDN_Name", "Type"}, col: 1, skipFirst: true, ok: true},
		{name: "plain name header", first: []string{"Name", "Program"}, col: 0, skipFirst: true, ok: true},
		{name: "legacy numeric row", first: []string{"36", "AEROCARIBBEAN AIRLINES"}, col: 1, skipFirst: false, ok: true},
		{name: "unknown shape", first: []string{"uid", "label"}, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, schema := range sdnSchemas {
				col, skipFirst, ok := schema.Detect(tt.first)
				if ok {
					assert.True(t, tt.ok, "unexpected detection")
					assert.Equal(t, tt.col, col)
					assert.Equal(t, tt.skipFirst, skipFirst)
					return
				}
			}
			assert.False(t, tt.ok, "expected a schema to match")
		})
	}
}

package watchlist

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const consolidatedFixture = `<?xml version="1.0" encoding="utf-8"?>
<CONSOLIDATED_LIST>
  <INDIVIDUALS>
    <INDIVIDUAL>
      <FIRST_NAME>RI</FIRST_NAME>
      <SECOND_NAME>WON HO</SECOND_NAME>
      <INDIVIDUAL_ALIAS>
        <ALIAS_NAME>Ri Won-ho</ALIAS_NAME>
      </INDIVIDUAL_ALIAS>
      <INDIVIDUAL_ALIAS>
        <ALIAS_NAME></ALIAS_NAME>
      </INDIVIDUAL_ALIAS>
    </INDIVIDUAL>
    <INDIVIDUAL>
      <FIRST_NAME>ABDUL</FIRST_NAME>
      <SECOND_NAME>AZIZ</SECOND_NAME>
      <THIRD_NAME>ABBASIN</THIRD_NAME>
    </INDIVIDUAL>
  </INDIVIDUALS>
  <ENTITIES>
    <ENTITY>
      <NAME>EASTERN TURKISTAN ISLAMIC MOVEMENT</NAME>
    </ENTITY>
    <ENTITY>
      <NAME>EASTERN TURKISTAN ISLAMIC MOVEMENT</NAME>
    </ENTITY>
  </ENTITIES>
</CONSOLIDATED_LIST>`

func unServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestUNLoaderExtractsNamesAliasesAndEntities(t *testing.T) {
	server := unServer(t, http.StatusOK, consolidatedFixture)

	loader := NewUNLoader(server.URL, server.Client())
	names, err := loader.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{
		"RI WON HO",
		"Ri Won-ho",
		"ABDUL AZIZ ABBASIN",
		"EASTERN TURKISTAN ISLAMIC MOVEMENT",
	}, names)
	assert.Equal(t, SourceUN, loader.Source())
}

func TestUNLoaderHTTPFailure(t *testing.T) {
	server := unServer(t, http.StatusBadGateway, "")

	loader := NewUNLoader(server.URL, server.Client())
	_, err := loader.Load(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestUNLoaderMalformedXML(t *testing.T) {
	server := unServer(t, http.StatusOK, "<CONSOLIDATED_LIST><INDIVIDUALS>")

	loader := NewUNLoader(server.URL, server.Client())
	_, err := loader.Load(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
}

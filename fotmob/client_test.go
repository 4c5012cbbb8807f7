package fotmob

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/Matthewduffy23/Club-View/testutils"
)

func TestSquadPhotos_success(t *testing.T) {
	fakeFotMob := testutils.NewFakeFotMobServer()
	defer fakeFotMob.Close()

	c, err := New()
	if err != nil {
		t.Fatalf("error creating client: %v", err)
	}

	photos, err := c.SquadPhotos(fmt.Sprintf("%s/teams/734839/squad/chengdu-rongcheng", fakeFotMob.URL()))
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}

	expected := map[string]string{
		"wang wei":      "https://images.fotmob.com/image_resources/playerimages/101.png",
		"felipe silva":  "https://images.fotmob.com/image_resources/playerimages/102.png",
		"jose martinez": "https://images.fotmob.com/image_resources/playerimages/103.png",
		"li qiang":      "https://images.fotmob.com/image_resources/playerimages/104.png",
	}
	if !reflect.DeepEqual(photos, expected) {
		t.Errorf("photo map does not match, expected: %v, got: %v", expected, photos)
	}
}

func TestSquadPhotos_httpError(t *testing.T) {
	fakeFotMob := testutils.NewFakeFotMobServer()
	defer fakeFotMob.Close()

	c, err := New()
	if err != nil {
		t.Fatalf("error creating client: %v", err)
	}

	photos, err := c.SquadPhotos(fmt.Sprintf("%s/teams/999/squad/unknown", fakeFotMob.URL()))
	if err == nil {
		t.Fatalf("error should not have been nil")
	}
	if photos != nil {
		t.Fatalf("photos should have been nil, was: %v", photos)
	}
}

func TestSquadPhotos_emptyURL(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatalf("error creating client: %v", err)
	}

	photos, err := c.SquadPhotos("")
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}
	if len(photos) != 0 {
		t.Errorf("expected an empty photo map, got: %v", photos)
	}
}

func TestSquadPhotos_noPlayersOnPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		rw.Write([]byte("<html><body><script>var x = 1;</script></body></html>"))
	}))
	defer server.Close()

	c, err := New()
	if err != nil {
		t.Fatalf("error creating client: %v", err)
	}

	photos, err := c.SquadPhotos(server.URL)
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}
	if len(photos) != 0 {
		t.Errorf("expected an empty photo map, got: %v", photos)
	}
}

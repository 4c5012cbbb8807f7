package main

import (
	"errors"
	"log"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/joho/godotenv"

	"github.com/Matthewduffy23/Club-View/controller"
	"github.com/Matthewduffy23/Club-View/dataset"
	"github.com/Matthewduffy23/Club-View/fotmob"
	"github.com/Matthewduffy23/Club-View/model"
	"github.com/Matthewduffy23/Club-View/web"
)

func main() {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	portNum := 3000 // 3000 is the default
	port := os.Getenv("PORT")
	if port != "" {
		portNum, err = strconv.Atoi(port)
		if err != nil {
			log.Fatalf("error parsing port number: %v", err)
		}
	}

	playersCSV := envOrDefault("PLAYERS_CSV", "ChinaDB.csv")
	teamsCSV := envOrDefault("TEAMS_CSV", "ChinaTeams.csv")
	overridesPath := envOrDefault("PHOTO_OVERRIDES", "player_photos.json")

	rows, err := loadPlayers(playersCSV)
	if err != nil {
		log.Fatalf("error loading player data: %v", err)
	}

	teamRows, err := loadTeamStats(teamsCSV)
	if err != nil {
		log.Fatalf("error loading team data: %v", err)
	}

	overrides, err := fotmob.LoadOverrides(overridesPath)
	if err != nil {
		log.Fatalf("error loading photo overrides: %v", err)
	}

	clock := clock.New()

	fotmobClient, err := fotmob.New()
	if err != nil {
		log.Fatalf("error creating fotmob client: %v", err)
	}
	cachedFotmob := fotmob.NewCached(fotmobClient, clock, fotmob.DefaultCacheTTL)

	ctrl, err := controller.New(clock, cachedFotmob, rows, teamRows, overrides)
	if err != nil {
		log.Fatalf("error creating a new controller: %v", err)
	}

	server, err := web.NewServer(portNum, ctrl)
	if err != nil {
		log.Fatalf("error creating new web server: %v", err)
	}

	shutdown := make(chan bool)
	wg := &sync.WaitGroup{}

	// Setup a handler to catch ctrl-c signals and properly shutdown everything.
	intChannel := make(chan os.Signal, 2)
	signal.Notify(intChannel, os.Interrupt)
	go func() {
		<-intChannel
		close(shutdown)

		if err := waitTimeout(wg, 10*time.Second); err != nil {
			log.Printf("timed out waiting for proper shutdown")
			os.Exit(255)
		}
	}()

	// Warm the photo cache and keep it fresh so page loads never block on
	// a scrape.
	ctrl.UpdatePhotos()
	wg.Add(1)
	go ctrl.RunPeriodicPhotoUpdates(fotmob.DefaultCacheTTL, shutdown, wg)

	// Start the web server
	wg.Add(1)
	go server.ListenAndServe(shutdown, wg)

	// Wait for everything to stop.
	wg.Wait()
	log.Printf("server shutdown")
}

func loadPlayers(path string) ([]model.PlayerRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return dataset.LoadPlayers(f)
}

func loadTeamStats(path string) ([]model.TeamRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return dataset.LoadTeamStats(f)
}

func envOrDefault(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func waitTimeout(wg *sync.WaitGroup, timeout time.Duration) error {
	c := make(chan any)
	go func() {
		defer close(c)
		wg.Wait()
	}()

	select {
	case <-c:
		return nil // completed normally
	case <-time.After(timeout):
		return errors.New("timed out waiting")
	}
}

package controller

import (
	"log"
	"sync"
	"time"
)

// UpdatePhotos warms the photo map for every configured club so the first
// page load after startup does not wait on a scrape.
func (c *controller) UpdatePhotos() {
	start := c.clock.Now()
	log.Printf("photo update starting at %v", start.Format(time.DateTime))

	for name, profile := range teamProfiles {
		photos, err := c.fotmob.SquadPhotos(profile.FotMobSquadURL)
		if err != nil {
			log.Printf("error updating photos for %s: %v", name, err)
			continue
		}
		log.Printf("updated %d photos for %s", len(photos), name)
	}

	log.Printf("photo update finished, took %v", c.clock.Now().Sub(start))
}

func (c *controller) RunPeriodicPhotoUpdates(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	ticker := time.NewTicker(frequency)
	defer wg.Done()

	for {
		select {
		case <-shutdown:
			return
		case <-ticker.C:
			c.UpdatePhotos()
		}
	}
}

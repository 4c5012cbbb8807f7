package fotmob

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// DefaultAvatarURL is shown when no photo can be found for a player.
const DefaultAvatarURL = "https://i.redd.it/43axcjdu59nd1.jpeg"

// LoadOverrides reads the optional local photo override file: a JSON object
// of player name to image URL. A missing file is not an error.
func LoadOverrides(path string) (map[string]string, error) {
	if path == "" {
		return map[string]string{}, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("error reading photo overrides: %w", err)
	}

	var raw map[string]string
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("error parsing photo overrides: %w", err)
	}

	out := make(map[string]string, len(raw))
	for k, v := range raw {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		out[Normalize(k)] = v
	}
	return out, nil
}

// ResolvePhoto picks a photo URL for a player. Priority: local override by
// full name, scraped map by full name, scraped map by surname, default
// avatar.
func ResolvePhoto(playerName string, photos, overrides map[string]string) string {
	full := Normalize(playerName)
	if url, ok := overrides[full]; ok {
		return url
	}
	if url, ok := photos[full]; ok {
		return url
	}

	parts := strings.Fields(full)
	if len(parts) > 0 {
		surname := parts[len(parts)-1]
		// Sorted so repeated lookups resolve the same photo when two squad
		// members share a surname.
		names := make([]string, 0, len(photos))
		for name := range photos {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			np := strings.Fields(name)
			if len(np) > 0 && np[len(np)-1] == surname {
				return photos[name]
			}
		}
	}

	return DefaultAvatarURL
}

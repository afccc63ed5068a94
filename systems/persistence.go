package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
)

// SavedSession represents the viewer state stored on disk between runs
type SavedSession struct {
	Project     string `json:"project"`
	Focus       int    `json:"focus"`
	ShowGrid    bool   `json:"showGrid"`
	ShowMarkers bool   `json:"showMarkers"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for session storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "ldtkworld",
	})
	if err != nil {
		log.Printf("[persistence] could not initialize: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSession loads the last session from disk. It returns nil when there
// is none.
func LoadSession() (*SavedSession, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("session")
	if err != nil {
		log.Printf("[persistence] could not load session: %v", err)
		return nil, nil
	}
	if data == nil {
		return nil, nil
	}

	var s SavedSession
	if err := json.Unmarshal(data, &s); err != nil {
		log.Printf("[persistence] could not parse saved session: %v", err)
		return nil, err
	}
	return &s, nil
}

// SaveSession saves the session to disk
func SaveSession(s *SavedSession) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("[persistence] could not serialize session: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("session", data); err != nil {
		log.Printf("[persistence] could not save session: %v", err)
		return err
	}
	return nil
}

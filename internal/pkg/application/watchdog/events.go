package watchdog

import (
	"encoding/json"
	"time"
)

type AssetNotObserved struct {
	AssetID    string    `json:"asset_id"`
	ObservedAt time.Time `json:"observed_at"`
	Timestamp  time.Time `json:"timestamp"`
}

func (m *AssetNotObserved) ContentType() string {
	return "application/json"
}
func (m *AssetNotObserved) TopicName() string {
	return "watchdog.assetNotObserved"
}
func (m *AssetNotObserved) Body() []byte {
	b, _ := json.Marshal(m)
	return b
}

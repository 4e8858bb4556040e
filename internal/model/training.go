package model

// Training material media types.
const (
	TrainingVideo    = "video"
	TrainingDocument = "document"
	TrainingAudio    = "audio"
)

// TrainingMaterial mirrors the 'training_materials' table: courses and
// downloadable resources, seeded by migrations and served read-only.
type TrainingMaterial struct {
	ID               uint64 `json:"id"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	Category         string `json:"category"`
	Type             string `json:"type"`
	URL              string `json:"url"`
	Language         string `json:"language"`
	OfflineAvailable bool   `json:"offline_available"`
}

package domain

const DefaultNoteUser = "Current User"

type CampaignNote struct {
	ID         string `json:"id"`
	Text       string `json:"text"`
	User       string `json:"user"`
	Timestamp  string `json:"timestamp"`
	CampaignID int64  `json:"campaign_id"`
}

type NoteCreateRequest struct {
	Text string `json:"text"`
	User string `json:"user"`
}

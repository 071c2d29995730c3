package model

type CandidateProfile struct {
	ResumeText     string `json:"resume_text"`
	AdditionalInfo string `json:"additional_info"`
}

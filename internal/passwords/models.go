package passwords

import "time"

// recordModel is one entry of the generated_passwords collection. The
// approval fields are paired: both set or both omitted.
type recordModel struct {
	Email         string     `json:"email"`
	PlainPassword string     `json:"plainPassword"`
	GeneratedAt   time.Time  `json:"generatedAt"`
	ApprovedAt    *time.Time `json:"approvedAt,omitempty"`
	ApprovedBy    string     `json:"approvedBy,omitempty"`
}

func newRecordModel(r Record) recordModel {
	model := recordModel{
		Email:         r.Email,
		PlainPassword: r.PlainPassword,
		GeneratedAt:   r.GeneratedAt,
		ApprovedAt:    nil,
		ApprovedBy:    "",
	}

	if r.Approval != nil {
		at := r.Approval.At
		model.ApprovedAt = &at
		model.ApprovedBy = r.Approval.By
	}

	return model
}

func (m recordModel) toDomain() Record {
	record := Record{
		Email:         m.Email,
		PlainPassword: m.PlainPassword,
		GeneratedAt:   m.GeneratedAt,
		Approval:      nil,
	}

	// half-approved entries are treated as unapproved
	if m.ApprovedAt != nil && m.ApprovedBy != "" {
		record.Approval = &Approval{At: *m.ApprovedAt, By: m.ApprovedBy}
	}

	return record
}

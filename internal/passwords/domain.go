package passwords

import "time"

// Approval records who approved a generated password and when. A record is
// approved iff it carries an Approval.
type Approval struct {
	At time.Time
	By string
}

type Record struct {
	Email         string
	PlainPassword string
	GeneratedAt   time.Time

	Approval *Approval
}

func (r Record) IsApproved() bool {
	return r.Approval != nil
}

func (r *Record) approve(by string, at time.Time) {
	r.Approval = &Approval{At: at, By: by}
}

func (r *Record) revoke() {
	r.Approval = nil
}

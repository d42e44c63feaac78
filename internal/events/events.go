// Package events defines the record-change topics the CRM server emits
// and the NATS plumbing the client uses to hear about them. Watch-style
// surfaces subscribe to invalidate cached counts and re-query when
// records change under them.
package events

import "context"

// Event topic constants. Subjects follow "crm.<resource>.<action>";
// subscribe to "crm.>" for everything or "crm.contact.>" per resource.
const (
	TopicContactCreated = "crm.contact.created"
	TopicContactUpdated = "crm.contact.updated"
	TopicContactDeleted = "crm.contact.deleted"

	TopicCompanyCreated = "crm.company.created"
	TopicCompanyUpdated = "crm.company.updated"
	TopicCompanyDeleted = "crm.company.deleted"

	TopicJobUpdated = "crm.job.updated"
)

// RecordChanged is the payload shared by all record-change topics.
type RecordChanged struct {
	Resource string `json:"resource"` // "contacts" or "companies"
	ID       string `json:"id"`
	Action   string `json:"action"` // "created", "updated", "deleted"
}

// JobChanged is the payload for job status transitions.
type JobChanged struct {
	JobID  string `json:"job_id"`
	Status string `json:"status"`
}

// Publisher is the interface for emitting events. The client itself only
// consumes events; the publisher exists for tests and local tooling.
type Publisher interface {
	Publish(ctx context.Context, topic string, event any) error
	Close() error
}

package employee

import "context"

// 発行するドメインイベントの種別です。
const (
	EventEmployeeCreated = "EmployeeCreated"
	EventEmployeeUpdated = "EmployeeUpdated"
	EventEmployeeDeleted = "EmployeeDeleted"
)

// EventPublisher はドメインイベントの発行先です。
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, payload any) error
}

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, string, any) error { return nil }

// DeletedEvent は削除イベントのペイロードです。
type DeletedEvent struct {
	Code string `json:"employeeCode"`
}

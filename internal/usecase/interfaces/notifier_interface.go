package interfaces

import "context"

//go:generate mockgen -source=notifier_interface.go -destination=mocks/notifier_interface_mock.go -package=mock_interfaces

// INotifier sends transactional emails. A failure never undoes the state
// change that triggered the notification.
type INotifier interface {
	Send(ctx context.Context, recipientEmail, subjectTemplate, bodyTemplate string, variables map[string]any) error
}

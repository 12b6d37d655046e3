package email

// Provider определяет интерфейс для отправки email.
// Вызовы fire-and-forget на уровне сервисов: ошибка отправки
// логируется и никогда не фейлит вызвавшую операцию.
type Provider interface {
	// Send отправляет простое email сообщение
	Send(email *Email) error

	// SendKind отправляет письмо одного из предопределенных видов
	SendKind(kind string, to string, data TemplateData) error

	// Validate проверяет конфигурацию провайдера
	Validate() error
}

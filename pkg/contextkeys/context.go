package contextkeys

// Используем кастомный тип, чтобы избежать коллизий
type contextKey string

// DBContextKey - это ключ, по которому мы храним *gorm.DB в context
const DBContextKey = contextKey("db")

// Ключи gin-контекста, которые заполняет auth-middleware.
// Строковые, потому что gin.Context хранит значения по строковым ключам.
const (
	UserIDKey = "userID"
	RoleKey   = "role"
)

package contextkeys

// Custom key type to avoid collisions in context.
type contextKey string

// DBContextKey is the key under which the *gorm.DB (pool or a test
// transaction) travels through the request context.
const DBContextKey = contextKey("db")

package repositories

// AmanaDbRepository groups every query against the application database.
// Methods take a context and an Executor so they run indifferently on the
// connection pool or inside a transaction.
type AmanaDbRepository struct{}

func NewAmanaDbRepository() *AmanaDbRepository {
	return &AmanaDbRepository{}
}

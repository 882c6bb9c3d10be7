package store

// Storages aggregates every repository the service layer depends on.
type Storages struct {
	UserRepository        UserRepository
	ItemRepository        ItemRepository
	CommentRepository     CommentRepository
	BookingRepository     BookingRepository
	ItemRequestRepository ItemRequestRepository
	Pinger                Pinger
}

// NewStorages builds all repositories on top of one database connection.
func NewStorages(db *DB) *Storages {
	return &Storages{
		UserRepository:        NewUserRepository(db, db.logger),
		ItemRepository:        NewItemRepository(db, db.logger),
		CommentRepository:     NewCommentRepository(db, db.logger),
		BookingRepository:     NewBookingRepository(db, db.logger),
		ItemRequestRepository: NewItemRequestRepository(db, db.logger),
		Pinger:                db,
	}
}

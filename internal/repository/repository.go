package repository

// Repositories holds all repositories
type Repositories struct {
	User    UserRepository
	Profile ProfileRepository
	Record  RecordRepository
}

// NewRepositories creates the in-memory repositories backing the stub server
func NewRepositories() *Repositories {
	return &Repositories{
		User:    NewUserRepository(),
		Profile: NewProfileRepository(),
		Record:  NewRecordRepository(),
	}
}

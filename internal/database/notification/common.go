package notification

type Repository struct{}

func NewRepository() *Repository {
	return &Repository{}
}

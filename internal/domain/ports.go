package domain

// UserRepository хранит учётные записи покупателей.
type UserRepository interface {
	Add(user *User) error
	Get(id string) (*User, error)
	GetByEmail(email string) (*User, error)
	List() []*User
}

// ProductRepository хранит товары каталога.
type ProductRepository interface {
	Add(product *Product) error
	Get(id string) (*Product, error)
	List() []*Product
	ListByCategory(category string) []*Product
}

// OrderRepository хранит размещённые заказы.
type OrderRepository interface {
	Add(order *Order) error
	Get(id string) (*Order, error)
	ListByUser(userID string) []*Order
}

// ReviewRepository хранит отзывы.
type ReviewRepository interface {
	Add(review *Review) error
	Get(id string) (*Review, error)
	Remove(id string) error
	ListByProduct(productID string) []*Review
}

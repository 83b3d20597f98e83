package domain

import "github.com/google/uuid"

// User — учётная запись покупателя с историей заказов.
type User struct {
	ID       string
	Username string
	Email    string
	Address  string
	Phone    string

	// password не экспортируется и никогда не попадает в логи.
	password string
	orders   []*Order
}

// NewUser создаёт учётную запись с новым идентификатором.
func NewUser(username, email, password, address, phone string) *User {
	return &User{
		ID:       uuid.NewString(),
		Username: username,
		Email:    email,
		Address:  address,
		Phone:    phone,
		password: password,
	}
}

// Login сверяет пару email/пароль.
func (u *User) Login(email, password string) bool {
	return u.Email == email && u.password == password
}

// UpdateProfile обновляет профиль частично: пустая строка означает
// «оставить поле как есть».
func (u *User) UpdateProfile(username, address, phone string) {
	if username != "" {
		u.Username = username
	}
	if address != "" {
		u.Address = address
	}
	if phone != "" {
		u.Phone = phone
	}
}

// AppendOrder добавляет заказ в конец истории; порядок истории — порядок размещения.
func (u *User) AppendOrder(order *Order) {
	u.orders = append(u.orders, order)
}

// Orders возвращает копию истории заказов пользователя.
func (u *User) Orders() []*Order {
	out := make([]*Order, len(u.orders))
	copy(out, u.orders)
	return out
}

package models

import "time"

type UserId string

type User struct {
	UserId      UserId
	Email       string
	FirstName   string
	LastName    string
	Role        Role
	FirebaseUid string
	DeletedAt   *time.Time
	CreatedAt   time.Time
}

func (u User) IsDeleted() bool {
	return u.DeletedAt != nil
}

type CreateUser struct {
	Email     string
	FirstName string
	LastName  string
	Role      Role
}

type UpdateUser struct {
	UserId    string
	Email     *string
	FirstName *string
	LastName  *string
	Role      *Role
}

type FirebaseIdentity struct {
	Email       string
	FirebaseUid string
}

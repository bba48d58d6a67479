package models

type IntoCredentials interface {
	IntoCredentials() Credentials
}

type Identity struct {
	UserId    UserId
	Email     string
	FirstName string
	LastName  string
}

type Credentials struct {
	ActorIdentity Identity
	Role          Role
}

func (u User) IntoCredentials() Credentials {
	return Credentials{
		ActorIdentity: Identity{
			UserId:    u.UserId,
			Email:     u.Email,
			FirstName: u.FirstName,
			LastName:  u.LastName,
		},
		Role: u.Role,
	}
}

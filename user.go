package mesto

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Profile defaults applied when signup omits the optional fields.
const (
	DefaultName   = "Jacques-Yves Cousteau"
	DefaultAbout  = "Explorer"
	DefaultAvatar = "https://pictures.s3.yandex.net/resources/jacques-cousteau_1604399756.png"
)

type UserRepository interface {
	Store(u *User) error
	FindByID(id primitive.ObjectID) (*User, error)
	// FindByEmail returns the full record including the password hash;
	// callers must project through Profile before responding.
	FindByEmail(email string) (*User, error)
	FindByIDs(ids []primitive.ObjectID) ([]User, error)
	FindAll() ([]User, error)
	UpdateProfile(id primitive.ObjectID, name, about string) (*User, error)
	UpdateAvatar(id primitive.ObjectID, avatar string) (*User, error)
}

type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Email    string             `bson:"email"`
	Password string             `bson:"password"`
	Name     string             `bson:"name"`
	About    string             `bson:"about"`
	Avatar   string             `bson:"avatar"`
}

// Profile is the outward projection of a User. It never carries the
// password hash.
type Profile struct {
	ID     string `json:"_id"`
	Name   string `json:"name"`
	About  string `json:"about"`
	Avatar string `json:"avatar"`
	Email  string `json:"email"`
}

// NewUser builds a user record from signup input, applying the profile
// defaults for omitted optional fields. The password must already be
// hashed.
func NewUser(email, passwordHash string, name, about, avatar *string) *User {
	u := &User{
		ID:       primitive.NewObjectID(),
		Email:    email,
		Password: passwordHash,
		Name:     DefaultName,
		About:    DefaultAbout,
		Avatar:   DefaultAvatar,
	}
	if name != nil {
		u.Name = *name
	}
	if about != nil {
		u.About = *about
	}
	if avatar != nil {
		u.Avatar = *avatar
	}
	return u
}

func (u *User) Profile() Profile {
	return Profile{
		ID:     u.ID.Hex(),
		Name:   u.Name,
		About:  u.About,
		Avatar: u.Avatar,
		Email:  u.Email,
	}
}

// parseUserID rejects malformed identifiers before any lookup happens.
func parseUserID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidUserID
	}
	return oid, nil
}

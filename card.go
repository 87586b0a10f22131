package mesto

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CardRepository interface {
	Store(c *Card) error
	FindByID(id primitive.ObjectID) (*Card, error)
	FindAll() ([]Card, error)
	Delete(id primitive.ObjectID) error
	// AddLike and RemoveLike are atomic set mutations: adding an id
	// already in the set, or removing one that is absent, leaves the
	// set unchanged and is not an error. Both return the updated card.
	AddLike(cardID, userID primitive.ObjectID) (*Card, error)
	RemoveLike(cardID, userID primitive.ObjectID) (*Card, error)
}

type Card struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty"`
	Name      string               `bson:"name"`
	Link      string               `bson:"link"`
	Owner     primitive.ObjectID   `bson:"owner"`
	Likes     []primitive.ObjectID `bson:"likes"`
	CreatedAt time.Time            `bson:"createdAt"`
}

// NewCard sets the owner to the creating caller, an empty likes set and
// the creation timestamp. Owner is immutable from here on.
func NewCard(name, link string, owner primitive.ObjectID) *Card {
	return &Card{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Link:      link,
		Owner:     owner,
		Likes:     []primitive.ObjectID{},
		CreatedAt: time.Now().UTC(),
	}
}

func (c *Card) OwnedBy(userID primitive.ObjectID) bool {
	return c.Owner.Hex() == userID.Hex()
}

func parseCardID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidCardID
	}
	return oid, nil
}

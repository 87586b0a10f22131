package mesto

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CardService interface {
	Create(callerID string, req createCardRequest) (CardView, error)
	List() ([]CardView, error)
	Delete(callerID, cardID string) error
	Like(callerID, cardID string) (CardView, error)
	Unlike(callerID, cardID string) (CardView, error)
}

type createCardRequest struct {
	Name string `json:"name" validate:"required,min=2,max=30"`
	Link string `json:"link" validate:"required,url"`
}

// CardView is the denormalized client view: owner and likes resolved to
// public profiles.
type CardView struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Link      string    `json:"link"`
	Owner     Profile   `json:"owner"`
	Likes     []Profile `json:"likes"`
	CreatedAt time.Time `json:"createdAt"`
}

type cardService struct {
	cards CardRepository
	users UserRepository
}

func NewCardService(cards CardRepository, users UserRepository) CardService {
	return &cardService{cards: cards, users: users}
}

func (svc *cardService) Create(callerID string, req createCardRequest) (CardView, error) {
	if err := validateRequest(req); err != nil {
		return CardView{}, err
	}

	owner, err := parseUserID(callerID)
	if err != nil {
		return CardView{}, err
	}

	c := NewCard(req.Name, req.Link, owner)
	if err := svc.cards.Store(c); err != nil {
		return CardView{}, err
	}

	return svc.view(c)
}

func (svc *cardService) List() ([]CardView, error) {
	cards, err := svc.cards.FindAll()
	if err != nil {
		return nil, err
	}

	views := make([]CardView, len(cards))
	for i := range cards {
		v, err := svc.view(&cards[i])
		if err != nil {
			return nil, err
		}
		views[i] = v
	}
	return views, nil
}

// Delete checks existence before ownership: a missing card is reported
// as not found, an existing card owned by somebody else as forbidden.
func (svc *cardService) Delete(callerID, cardID string) error {
	id, err := parseCardID(cardID)
	if err != nil {
		return err
	}

	caller, err := parseUserID(callerID)
	if err != nil {
		return err
	}

	c, err := svc.cards.FindByID(id)
	if err != nil {
		return err
	}

	if !c.OwnedBy(caller) {
		return ErrCardForbidden
	}

	return svc.cards.Delete(id)
}

func (svc *cardService) Like(callerID, cardID string) (CardView, error) {
	id, caller, err := svc.parseIDs(cardID, callerID)
	if err != nil {
		return CardView{}, err
	}

	c, err := svc.cards.AddLike(id, caller)
	if err != nil {
		return CardView{}, err
	}
	return svc.view(c)
}

func (svc *cardService) Unlike(callerID, cardID string) (CardView, error) {
	id, caller, err := svc.parseIDs(cardID, callerID)
	if err != nil {
		return CardView{}, err
	}

	c, err := svc.cards.RemoveLike(id, caller)
	if err != nil {
		return CardView{}, err
	}
	return svc.view(c)
}

func (svc *cardService) parseIDs(cardID, callerID string) (primitive.ObjectID, primitive.ObjectID, error) {
	id, err := parseCardID(cardID)
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, err
	}

	caller, err := parseUserID(callerID)
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, err
	}
	return id, caller, nil
}

func (svc *cardService) view(c *Card) (CardView, error) {
	owner, err := svc.users.FindByID(c.Owner)
	if err != nil {
		return CardView{}, err
	}

	likers, err := svc.users.FindByIDs(c.Likes)
	if err != nil {
		return CardView{}, err
	}

	likes := make([]Profile, len(likers))
	for i := range likers {
		likes[i] = likers[i].Profile()
	}

	return CardView{
		ID:        c.ID.Hex(),
		Name:      c.Name,
		Link:      c.Link,
		Owner:     owner.Profile(),
		Likes:     likes,
		CreatedAt: c.CreatedAt,
	}, nil
}

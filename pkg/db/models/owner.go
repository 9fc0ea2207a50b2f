package models

import "strconv"

// Owner scopes cart and order visibility: an authenticated user id or an
// anonymous session token, never both.
type Owner struct {
	UserID       *int64
	SessionToken string
}

// UserOwner builds an Owner for an authenticated user.
func UserOwner(userID int64) Owner {
	return Owner{UserID: &userID}
}

// SessionOwner builds an Owner for an anonymous session.
func SessionOwner(token string) Owner {
	return Owner{SessionToken: token}
}

// Valid reports whether the owner carries any identity at all.
func (o Owner) Valid() bool {
	return o.UserID != nil || o.SessionToken != ""
}

// Key is the canonical storage scope written to owner_key columns.
func (o Owner) Key() string {
	if o.UserID != nil {
		return "u:" + strconv.FormatInt(*o.UserID, 10)
	}
	if o.SessionToken != "" {
		return "s:" + o.SessionToken
	}
	return ""
}

func (o Owner) sessionTokenPtr() *string {
	if o.SessionToken == "" {
		return nil
	}
	tok := o.SessionToken
	return &tok
}

// Stamp copies the owner identity onto a cart item.
func (o Owner) Stamp(item *CartItem) {
	item.OwnerKey = o.Key()
	item.UserID = o.UserID
	item.SessionToken = o.sessionTokenPtr()
}

// StampOrder copies the owner identity onto an order.
func (o Owner) StampOrder(order *Order) {
	order.OwnerKey = o.Key()
	order.UserID = o.UserID
	order.SessionToken = o.sessionTokenPtr()
}

// internal/application/query/store/userdata_query.go
package store

import (
	"context"
	"errors"
	"log"
	"strings"

	dto "radacycling/internal/application/query/store/dto"
	messagedom "radacycling/internal/domain/message"
	orderdom "radacycling/internal/domain/order"
)

// OrderReader is the read port for order documents.
type OrderReader interface {
	ListByUserID(ctx context.Context, userID string) ([]orderdom.Order, error)
	ListAll(ctx context.Context) ([]orderdom.Order, error)
}

// MessageReader is the read port for archived inquiries.
type MessageReader interface {
	ListAll(ctx context.Context) ([]messagedom.Message, error)
}

// UserDataQuery serves the authenticated account page. The admin account
// additionally sees every order and every archived inquiry.
type UserDataQuery struct {
	Orders   OrderReader
	Messages MessageReader
	AdminUID string
}

func NewUserDataQuery(orders OrderReader, messages MessageReader, adminUID string) *UserDataQuery {
	return &UserDataQuery{
		Orders:   orders,
		Messages: messages,
		AdminUID: strings.TrimSpace(adminUID),
	}
}

// Fetch returns the payload for uid. Collection read failures are logged
// and yield empty lists rather than failing the page.
func (q *UserDataQuery) Fetch(ctx context.Context, uid string) (dto.UserDataDTO, error) {
	if q == nil || q.Orders == nil {
		return dto.UserDataDTO{}, errors.New("userdata query: order reader is nil")
	}
	uid = strings.TrimSpace(uid)
	if uid == "" {
		return dto.UserDataDTO{}, errors.New("userdata query: uid is empty")
	}

	var out dto.UserDataDTO

	if q.AdminUID != "" && uid == q.AdminUID {
		orders, err := q.Orders.ListAll(ctx)
		if err != nil {
			log.Printf("[userdata] list all orders failed: %v", err)
		}
		out.Orders = orders

		if q.Messages != nil {
			msgs, err := q.Messages.ListAll(ctx)
			if err != nil {
				log.Printf("[userdata] list messages failed: %v", err)
			}
			out.Messages = msgs
		}
		return out, nil
	}

	orders, err := q.Orders.ListByUserID(ctx, uid)
	if err != nil {
		log.Printf("[userdata] list orders for %s failed: %v", uid, err)
	}
	out.Orders = orders
	return out, nil
}

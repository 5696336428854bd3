package memory

import (
	"testing"

	"github.com/Devpy220/DiscoveryEvents/internal/repository/storetest"
)

func TestStore_Contract(t *testing.T) {
	storetest.Run(t, func(t *testing.T) storetest.Backend {
		s := NewStore()
		s.Seed()
		return storetest.Backend{
			Users:   s.Users(),
			Events:  s.Events(),
			Tickets: s.Tickets(),
			Orders:  s.Orders(),
		}
	})
}

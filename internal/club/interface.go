package club

import "github.com/mauv0809/handball-stats/internal/handball"

// ClubStore defines the interface for interacting with the club roster.
type ClubStore interface {
	AddPlayer(name, position string, number int, category handball.Category) (*handball.Player, error)
	GetAllPlayers() ([]handball.Player, error)
	GetPlayer(id int64) (*handball.Player, error)
	GetPlayers(ids []int64) ([]handball.Player, error)
}

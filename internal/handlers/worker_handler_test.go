package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Lex0104/Saphir/internal/models"
)

func worker(id uint, pos models.Position) models.Worker {
	return models.Worker{ID: id, FirstName: "W", LastName: "Test", Position: pos}
}

func positions(list []models.Worker) []models.Position {
	out := make([]models.Position, 0, len(list))
	for _, w := range list {
		out = append(out, w.Position)
	}
	return out
}

func TestGroupWorkers(t *testing.T) {
	workers := []models.Worker{
		worker(1, models.PositionWaiter),
		worker(2, models.PositionChef),
		worker(3, models.PositionManager),
		worker(4, models.PositionHostess),
		worker(5, models.PositionOwner),
		worker(6, models.PositionSousChef),
		worker(7, models.PositionBartender),
		worker(8, models.PositionTheChef),
	}

	administrative, kitchen, hall := groupWorkers(workers)

	assert.Equal(t,
		[]models.Position{models.PositionOwner, models.PositionManager},
		positions(administrative))

	assert.Equal(t,
		[]models.Position{models.PositionTheChef, models.PositionSousChef, models.PositionChef},
		positions(kitchen))

	assert.Equal(t,
		[]models.Position{models.PositionHostess, models.PositionBartender, models.PositionWaiter},
		positions(hall))
}

func TestGroupWorkersStableWithinRank(t *testing.T) {
	workers := []models.Worker{
		worker(1, models.PositionWaiter),
		worker(2, models.PositionWaiter),
		worker(3, models.PositionWaiter),
	}

	_, _, hall := groupWorkers(workers)

	ids := []uint{hall[0].ID, hall[1].ID, hall[2].ID}
	assert.Equal(t, []uint{1, 2, 3}, ids)
}

func TestGroupWorkersSkipsUnknownPosition(t *testing.T) {
	workers := []models.Worker{
		worker(1, models.Position("janitor")),
		worker(2, models.PositionWaiter),
	}

	administrative, kitchen, hall := groupWorkers(workers)

	assert.Empty(t, administrative)
	assert.Empty(t, kitchen)
	assert.Len(t, hall, 1)
}

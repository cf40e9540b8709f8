package collector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildMatrix(t *testing.T) {
	tasks := BuildMatrix()

	assert.Len(t, tasks, len(Cities)*len(Industries))
	assert.Equal(t, 612, len(tasks))

	// City-outer order: the first block of tasks all belong to the first city
	for i := 0; i < len(Industries); i++ {
		assert.Equal(t, Cities[0], tasks[i].City)
		assert.Equal(t, Industries[i], tasks[i].Industry)
	}

	// Second city starts right after the first industry block
	assert.Equal(t, Cities[1], tasks[len(Industries)].City)
	assert.Equal(t, Industries[0], tasks[len(Industries)].Industry)

	for _, task := range tasks {
		assert.NotEmpty(t, task.Industry)
		assert.NotEmpty(t, task.City)
	}
}

func TestTaskQuery(t *testing.T) {
	task := Task{Industry: "Dental Clinic", City: "Guelph, ON"}
	assert.Equal(t, "Dental Clinic in Guelph, ON", task.Query())
}

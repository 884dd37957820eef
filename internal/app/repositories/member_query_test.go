package repositories

import (
	"testing"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/serkank/amora/internal/app/models"
	"github.com/serkank/amora/internal/pkg/helpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// renderConditions builds a representative SELECT from the discovery
// predicates so the generated SQL can be asserted without a live database.
func renderConditions(t *testing.T, conds []squirrel.Sqlizer) (string, []interface{}) {
	t.Helper()

	q := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).
		Select("m.id").From("members m")
	for _, c := range conds {
		q = q.Where(c)
	}

	sql, args, err := q.ToSql()
	require.NoError(t, err)
	return sql, args
}

func baseFilter() models.MemberFilter {
	return models.MemberFilter{
		RequesterID: 11,
		Gender:      models.GenderFemale,
		MinAge:      models.DefaultMinAge,
		MaxAge:      models.DefaultMaxAge,
	}
}

func TestDiscoveryConditions_AlwaysExcludesRequester(t *testing.T) {
	today := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	sql, args := renderConditions(t, discoveryConditions(baseFilter(), today))

	assert.Contains(t, sql, "m.id <> $1")
	assert.Contains(t, sql, "m.gender = $2")
	assert.Equal(t, []interface{}{int64(11), "female"}, args)
}

func TestDiscoveryConditions_DefaultAgesSkipDobWindow(t *testing.T) {
	today := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	sql, _ := renderConditions(t, discoveryConditions(baseFilter(), today))

	assert.NotContains(t, sql, "date_of_birth")
}

func TestDiscoveryConditions_CustomAgesAddDobWindow(t *testing.T) {
	today := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	filter := baseFilter()
	filter.MinAge = 25
	filter.MaxAge = 30

	sql, args := renderConditions(t, discoveryConditions(filter, today))

	assert.Contains(t, sql, "m.date_of_birth >= $3")
	assert.Contains(t, sql, "m.date_of_birth <= $4")

	minDob, maxDob := helpers.DobRange(today, 25, 30)
	require.Len(t, args, 4)
	assert.Equal(t, minDob, args[2])
	assert.Equal(t, maxDob, args[3])
}

func TestDiscoveryConditions_MovingOneBoundEnablesDobWindow(t *testing.T) {
	today := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	filter := baseFilter()
	filter.MaxAge = 40

	sql, _ := renderConditions(t, discoveryConditions(filter, today))

	assert.Contains(t, sql, "date_of_birth")
}

func TestDiscoveryConditions_LikersAndLikeesCombine(t *testing.T) {
	today := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	filter := baseFilter()
	filter.Likers = true
	filter.Likees = true

	sql, args := renderConditions(t, discoveryConditions(filter, today))

	assert.Contains(t, sql, "EXISTS (SELECT 1 FROM likes l WHERE l.liker_id = m.id AND l.likee_id = $3)")
	assert.Contains(t, sql, "EXISTS (SELECT 1 FROM likes l WHERE l.likee_id = m.id AND l.liker_id = $4)")
	assert.Equal(t, []interface{}{int64(11), "female", int64(11), int64(11)}, args)
}

func TestDiscoveryOrder(t *testing.T) {
	assert.Equal(t, "m.created_profile DESC", discoveryOrder(models.OrderByCreated))
	assert.Equal(t, "m.created_profile DESC", discoveryOrder(models.OrderByCreatedAlt))
	assert.Equal(t, "m.last_active DESC", discoveryOrder(models.OrderByLastActive))
	assert.Equal(t, "m.last_active DESC", discoveryOrder(""))
	assert.Equal(t, "m.last_active DESC", discoveryOrder("nonsense"))
}

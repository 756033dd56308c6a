package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Directorio-api/internal/domain"
	"github.com/jhoicas/Directorio-api/internal/domain/entity"
)

func TestUserRepo_Unicidad(t *testing.T) {
	r := NewUserRepository()
	ctx := context.Background()
	require.NoError(t, r.Create(ctx, &entity.User{Username: "alice", Email: "a@x.com"}))

	assert.ErrorIs(t, r.Create(ctx, &entity.User{Username: "alice", Email: "a@x.com"}), domain.ErrDuplicateUsername)
	assert.ErrorIs(t, r.Create(ctx, &entity.User{Username: "bob", Email: "a@x.com"}), domain.ErrDuplicateEmail)

	u, err := r.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "alice", u.Username)

	u, err = r.GetByUsername(ctx, "nadie")
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestUserRepo_RegistroConcurrenteSoloUnoGana(t *testing.T) {
	r := NewUserRepository()
	ctx := context.Background()

	const n = 20
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = r.Create(ctx, &entity.User{Username: "alice", Email: fmt.Sprintf("a%d@x.com", i)})
		}(i)
	}
	wg.Wait()

	ok := 0
	for _, err := range errs {
		if err == nil {
			ok++
		} else {
			assert.ErrorIs(t, err, domain.ErrDuplicateUsername)
		}
	}
	assert.Equal(t, 1, ok)
}

func TestEmployeeRepo_CRUD(t *testing.T) {
	r := NewEmployeeRepository()
	ctx := context.Background()

	a := &entity.Employee{Name: "A", Company: "C", City: "X", PhoneNumber: "1"}
	b := &entity.Employee{Name: "B", Company: "C", City: "X", PhoneNumber: "2"}
	require.NoError(t, r.Create(ctx, a))
	require.NoError(t, r.Create(ctx, b))
	assert.Greater(t, b.ID, a.ID)

	list, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, b.ID, list[0].ID, "más reciente primero")

	// Modificar la copia devuelta no altera el store.
	got, err := r.GetByID(ctx, a.ID)
	require.NoError(t, err)
	got.Name = "cambiado"
	again, _ := r.GetByID(ctx, a.ID)
	assert.Equal(t, "A", again.Name)

	repl := entity.Employee{ID: a.ID, Name: "A2", Company: "C2", City: "Y", PhoneNumber: "9"}
	ok, err := r.Update(ctx, &repl)
	require.NoError(t, err)
	assert.True(t, ok)
	got, err = r.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, repl, *got)

	ok, err = r.Delete(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = r.Delete(ctx, a.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	// Los IDs no se reutilizan.
	c := &entity.Employee{Name: "C", Company: "C", City: "X", PhoneNumber: "3"}
	require.NoError(t, r.Create(ctx, c))
	assert.Greater(t, c.ID, b.ID)
}

func TestEmployeeRepo_UpdateInexistente(t *testing.T) {
	r := NewEmployeeRepository()
	ok, err := r.Update(context.Background(), &entity.Employee{ID: 7, Name: "X"})
	require.NoError(t, err)
	assert.False(t, ok)
}

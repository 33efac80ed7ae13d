// Package memory implementa los puertos de persistencia sobre mapas en
// memoria, con las mismas reglas de unicidad y de integridad referencial que
// el adaptador PostgreSQL. Lo usan la suite de tests y el modo de desarrollo
// DB_DRIVER=memory. Las validaciones corren antes de mutar, de modo que una
// violación nunca deja estado parcial.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/invorya/stockroom-api/internal/application/inventory"
	"github.com/invorya/stockroom-api/internal/domain"
	"github.com/invorya/stockroom-api/internal/domain/entity"
	"github.com/invorya/stockroom-api/internal/domain/repository"
)

var _ inventory.TxRunner = (*Store)(nil)

// Store estado compartido del adaptador. Los ids son secuenciales por tabla,
// asignados al insertar y nunca reutilizados.
type Store struct {
	mu sync.Mutex

	users     map[int64]entity.User
	locations map[int64]entity.Location
	stock     map[int64]entity.Stock
	notes     map[int64]entity.Note

	nextUserID     int64
	nextLocationID int64
	nextStockID    int64
	nextNoteID     int64
}

// NewStore construye un almacén vacío.
func NewStore() *Store {
	return &Store{
		users:          make(map[int64]entity.User),
		locations:      make(map[int64]entity.Location),
		stock:          make(map[int64]entity.Stock),
		notes:          make(map[int64]entity.Note),
		nextUserID:     1,
		nextLocationID: 1,
		nextStockID:    1,
		nextNoteID:     1,
	}
}

// Users devuelve el repositorio de usuarios sobre este almacén.
func (s *Store) Users() repository.UserRepository { return &userRepo{s: s} }

// Locations devuelve el repositorio de ubicaciones sobre este almacén.
func (s *Store) Locations() repository.LocationRepository { return &locationRepo{s: s} }

// Stock devuelve el repositorio de stock sobre este almacén.
func (s *Store) Stock() repository.StockRepository { return &stockRepo{s: s} }

// Notes devuelve el repositorio de notas sobre este almacén.
func (s *Store) Notes() repository.NoteRepository { return &noteRepo{s: s} }

// Run implementa inventory.TxRunner. Como cada operación valida sus
// constraints antes de mutar, un error en fn no deja escrituras parciales.
func (s *Store) Run(ctx context.Context, fn func(
	users repository.UserRepository,
	locations repository.LocationRepository,
	stock repository.StockRepository,
	notes repository.NoteRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(s.Users(), s.Locations(), s.Stock(), s.Notes())
}

// ── usuarios ──────────────────────────────────────────────────────────────

type userRepo struct{ s *Store }

func (r *userRepo) Create(user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Username == user.Username {
			return domain.ErrDuplicate
		}
	}
	user.ID = r.s.nextUserID
	r.s.nextUserID++
	r.s.users[user.ID] = *user
	return nil
}

func (r *userRepo) GetByUsername(username string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Username == username {
			cp := u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *userRepo) ListAll() ([]*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list := make([]*entity.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		cp := u
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

// ── ubicaciones ───────────────────────────────────────────────────────────

type locationRepo struct{ s *Store }

func (r *locationRepo) Create(location *entity.Location) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, l := range r.s.locations {
		if l.Office == location.Office {
			return domain.ErrDuplicate
		}
	}
	location.ID = r.s.nextLocationID
	r.s.nextLocationID++
	r.s.locations[location.ID] = *location
	return nil
}

func (r *locationRepo) GetByOffice(office string) (*entity.Location, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, l := range r.s.locations {
		if l.Office == office {
			cp := l
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *locationRepo) ListAll() ([]*entity.Location, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list := make([]*entity.Location, 0, len(r.s.locations))
	for _, l := range r.s.locations {
		cp := l
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

// ── stock ─────────────────────────────────────────────────────────────────

type stockRepo struct{ s *Store }

func (r *stockRepo) Create(item *entity.Stock) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, st := range r.s.stock {
		if st.Serial == item.Serial {
			return domain.ErrDuplicate
		}
	}
	if item.LocationID != nil {
		if _, ok := r.s.locations[*item.LocationID]; !ok {
			return domain.ErrForeignKey
		}
	}
	item.ID = r.s.nextStockID
	r.s.nextStockID++
	r.s.stock[item.ID] = *item
	return nil
}

func (r *stockRepo) GetBySerial(serial string) (*entity.Stock, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, st := range r.s.stock {
		if st.Serial == serial {
			cp := st
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *stockRepo) ListAll() ([]*entity.Stock, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list := make([]*entity.Stock, 0, len(r.s.stock))
	for _, st := range r.s.stock {
		cp := st
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

// ── notas ─────────────────────────────────────────────────────────────────

type noteRepo struct{ s *Store }

func (r *noteRepo) Create(note *entity.Note) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	note.ID = r.s.nextNoteID
	r.s.nextNoteID++
	r.s.notes[note.ID] = *note
	return nil
}

func (r *noteRepo) ListAll() ([]*entity.Note, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list := make([]*entity.Note, 0, len(r.s.notes))
	for _, n := range r.s.notes {
		cp := n
		list = append(list, &cp)
	}
	// id descendente: la nota más reciente primero
	sort.Slice(list, func(i, j int) bool { return list[i].ID > list[j].ID })
	return list, nil
}

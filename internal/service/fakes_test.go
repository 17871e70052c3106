package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"hostel_manager/internal/model"
)

// In-memory repository doubles shared by the service tests.

type fakeUserRepo struct {
	users  map[int]*model.User
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int]*model.User{}, nextID: 1}
}

func (f *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	for _, u := range f.users {
		if u.Username == user.Username {
			return errors.New("duplicate username")
		}
	}
	user.ID = f.nextID
	f.nextID++
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id int) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindStudents(_ context.Context) ([]model.User, error) {
	var students []model.User
	for _, u := range f.users {
		if u.Role == model.RoleStudent {
			students = append(students, *u)
		}
	}
	sort.Slice(students, func(i, j int) bool { return students[i].ID < students[j].ID })
	return students, nil
}

func (f *fakeUserRepo) Update(_ context.Context, id int, req model.UpdateUserRequest) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	if req.Password != nil {
		u.Password = *req.Password
	}
	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.RoomNumber != nil {
		u.RoomNumber = req.RoomNumber
	}
	if req.SharingType != nil {
		u.SharingType = req.SharingType
	}
	if req.AadharNumber != nil {
		u.AadharNumber = req.AadharNumber
	}
	if req.Mobile != nil {
		u.Mobile = req.Mobile
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id int) error {
	if _, ok := f.users[id]; !ok {
		return errors.New("user not found for deletion")
	}
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

type fakeRentRepo struct {
	records map[int64]*model.RentRecord
	nextID  int64
}

func newFakeRentRepo() *fakeRentRepo {
	return &fakeRentRepo{records: map[int64]*model.RentRecord{}, nextID: 1}
}

func (f *fakeRentRepo) Create(_ context.Context, rent *model.RentRecord) error {
	rent.ID = f.nextID
	f.nextID++
	cp := *rent
	f.records[rent.ID] = &cp
	return nil
}

func (f *fakeRentRepo) FindByID(_ context.Context, id int64) (*model.RentRecord, error) {
	r, ok := f.records[id]
	if !ok {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (f *fakeRentRepo) FindAll(_ context.Context) ([]model.RentRecord, error) {
	return f.collect(func(*model.RentRecord) bool { return true }), nil
}

func (f *fakeRentRepo) FindByStudent(_ context.Context, studentID int) ([]model.RentRecord, error) {
	return f.collect(func(r *model.RentRecord) bool { return r.StudentID == studentID }), nil
}

func (f *fakeRentRepo) MarkPaid(_ context.Context, id int64) (*model.RentRecord, error) {
	r, ok := f.records[id]
	if !ok {
		return nil, nil
	}
	now := time.Now()
	r.Status = model.RentStatusPaid
	r.PaymentDate = &now
	cp := *r
	return &cp, nil
}

func (f *fakeRentRepo) collect(keep func(*model.RentRecord) bool) []model.RentRecord {
	var out []model.RentRecord
	for _, r := range f.records {
		if keep(r) {
			out = append(out, *r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

type fakeMenuRepo struct {
	items  map[string]*model.MenuItem
	nextID int64
}

func newFakeMenuRepo() *fakeMenuRepo {
	return &fakeMenuRepo{items: map[string]*model.MenuItem{}, nextID: 1}
}

func (f *fakeMenuRepo) FindAll(_ context.Context) ([]model.MenuItem, error) {
	var out []model.MenuItem
	for _, m := range f.items {
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeMenuRepo) Upsert(_ context.Context, req model.UpsertMenuRequest) (*model.MenuItem, error) {
	m, ok := f.items[req.Day]
	if !ok {
		m = &model.MenuItem{ID: f.nextID, Day: req.Day}
		f.nextID++
		f.items[req.Day] = m
	}
	m.Breakfast = req.Breakfast
	m.Lunch = req.Lunch
	m.Dinner = req.Dinner
	cp := *m
	return &cp, nil
}

type fakeNotificationRepo struct {
	notes  []model.Notification
	nextID int64
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{nextID: 1}
}

func (f *fakeNotificationRepo) Create(_ context.Context, note *model.Notification) error {
	note.ID = f.nextID
	f.nextID++
	note.CreatedAt = time.Now()
	f.notes = append(f.notes, *note)
	return nil
}

func (f *fakeNotificationRepo) FindAll(_ context.Context) ([]model.Notification, error) {
	out := make([]model.Notification, len(f.notes))
	copy(out, f.notes)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

type fakeSettingsRepo struct {
	settings *model.AdminSettings
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{}
}

func (f *fakeSettingsRepo) Get(_ context.Context) (*model.AdminSettings, error) {
	if f.settings == nil {
		return nil, nil
	}
	cp := *f.settings
	return &cp, nil
}

func (f *fakeSettingsRepo) Upsert(_ context.Context, req model.UpdateSettingsRequest) (*model.AdminSettings, error) {
	if f.settings == nil {
		f.settings = &model.AdminSettings{ID: 1}
	}
	f.settings.UpiID = req.UpiID
	cp := *f.settings
	return &cp, nil
}

package staff

import (
	"strings"

	"github.com/electron-shaders/sc2002-proj/internal/store"
	"github.com/electron-shaders/sc2002-proj/pkg/logger"
	"github.com/electron-shaders/sc2002-proj/pkg/types"
)

// Service is the administrator's staff management: doctors live in their own
// store, pharmacists and administrators in the shared staff store.
type Service struct {
	logger  *logger.Logger
	doctors *store.DoctorStore
	staff   *store.StaffStore
}

// New creates a staff service.
func New(doctors *store.DoctorStore, staffStore *store.StaffStore, log *logger.Logger) *Service {
	return &Service{logger: log, doctors: doctors, staff: staffStore}
}

// AddDoctor inserts a new doctor and returns the assigned ID.
func (s *Service) AddDoctor(doctor *types.Doctor) string {
	id := s.doctors.Add(doctor)
	s.logger.WithUserID(id).Info("Doctor added")
	return id
}

// AddStaff inserts a pharmacist or administrator and returns the assigned ID.
// Patients and doctors are rejected.
func (s *Service) AddStaff(user *types.User) (string, error) {
	role := user.Role()
	if role != types.RolePharmacist && role != types.RoleAdministrator {
		return "", types.NewValidationError(types.ErrCodeInvalidRole, "staff must be a pharmacist or administrator")
	}
	id := s.staff.Add(user)
	s.logger.WithUserID(id).Info("Staff member added")
	return id, nil
}

// SearchByRole lists staff of the given role. Doctors come from the doctor
// store; pharmacists and administrators from the staff store.
func (s *Service) SearchByRole(role types.UserRole) ([]types.UserView, error) {
	switch role {
	case types.RoleDoctor:
		doctors := s.doctors.List()
		out := make([]types.UserView, 0, len(doctors))
		for _, d := range doctors {
			out = append(out, d.User.Snapshot())
		}
		return out, nil
	case types.RolePharmacist, types.RoleAdministrator:
		out := make([]types.UserView, 0)
		for _, u := range s.staff.List() {
			if u.Role() == role {
				out = append(out, u.Snapshot())
			}
		}
		return out, nil
	}
	return nil, types.NewValidationError(types.ErrCodeInvalidRole, "invalid staff role")
}

// SearchByName lists staff whose name matches case-insensitively.
func (s *Service) SearchByName(name string) []types.UserView {
	return s.searchAll(func(u *types.User) bool {
		return strings.EqualFold(u.Name(), name)
	})
}

// SearchByAge lists staff of the given age.
func (s *Service) SearchByAge(age int) []types.UserView {
	return s.searchAll(func(u *types.User) bool {
		return u.Age() == age
	})
}

// SearchByGender lists staff of the given gender.
func (s *Service) SearchByGender(isMale bool) []types.UserView {
	return s.searchAll(func(u *types.User) bool {
		return u.IsMale() == isMale
	})
}

func (s *Service) searchAll(keep func(*types.User) bool) []types.UserView {
	out := make([]types.UserView, 0)
	for _, d := range s.doctors.List() {
		if keep(d.User) {
			out = append(out, d.User.Snapshot())
		}
	}
	for _, u := range s.staff.List() {
		if keep(u) {
			out = append(out, u.Snapshot())
		}
	}
	return out
}

// Update applies a partial update to a staff member. The merge policy is
// uniform: nil fields keep the stored value, set fields overwrite.
func (s *Service) Update(userID string, updates *types.StaffUpdates) error {
	if doctor, ok := s.doctors.Get(userID); ok {
		updates.ApplyToDoctor(doctor)
		s.logger.WithUserID(userID).Info("Doctor updated")
		return nil
	}
	if user, ok := s.staff.Get(userID); ok {
		updates.Apply(user)
		s.logger.WithUserID(userID).Info("Staff member updated")
		return nil
	}
	return types.NewNotFoundError(types.ErrCodeStaffNotFound, "staff member not found")
}

// Remove deletes a staff member from whichever store holds them.
func (s *Service) Remove(userID string) error {
	if _, ok := s.doctors.Get(userID); ok {
		s.doctors.Remove(userID)
		s.logger.WithUserID(userID).Info("Doctor removed")
		return nil
	}
	if user, ok := s.staff.Get(userID); ok && user.Role() == types.RolePharmacist {
		s.staff.Remove(userID)
		s.logger.WithUserID(userID).Info("Staff member removed")
		return nil
	}
	return types.NewNotFoundError(types.ErrCodeStaffNotFound, "staff member not found")
}

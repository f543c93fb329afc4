// Package memory implementa los repositorios en memoria. Se usa en dev y
// en tests; no persiste nada entre reinicios.
package memory

import (
	"sync"

	"pet-health-tracker/internal/domain/accounts"
	"pet-health-tracker/internal/domain/health"
)

// Store comparte un único lock entre todas las tablas para que los borrados
// en cascada (cuenta -> mascotas -> registros) sean atómicos.
type Store struct {
	mu sync.RWMutex

	accounts    map[int64]accounts.Account
	accountsSeq int64

	pets    map[int64]petRow
	petsSeq int64

	records      *childTable[health.Record]
	medications  *childTable[health.Medication]
	vaccinations *childTable[health.Vaccination]
	vetVisits    *childTable[health.VetVisit]
}

func NewStore() *Store {
	s := &Store{
		accounts: make(map[int64]accounts.Account),
		pets:     make(map[int64]petRow),
	}
	s.records = newRecordTable(s)
	s.medications = newMedicationTable(s)
	s.vaccinations = newVaccinationTable(s)
	s.vetVisits = newVetVisitTable(s)
	return s
}

func (s *Store) Accounts() accounts.Repository {
	return accountRepo{s}
}

// Health arma los cuatro repos para health.NewService.
func (s *Store) Health() health.Repositories {
	return health.Repositories{
		Records:      s.records,
		Medications:  s.medications,
		Vaccinations: s.vaccinations,
		VetVisits:    s.vetVisits,
	}
}

// deletePetLocked borra la mascota y sus registros. Requiere s.mu tomado.
func (s *Store) deletePetLocked(petID int64) {
	delete(s.pets, petID)
	s.records.deleteByPetLocked(petID)
	s.medications.deleteByPetLocked(petID)
	s.vaccinations.deleteByPetLocked(petID)
	s.vetVisits.deleteByPetLocked(petID)
}

// ownsPetLocked requiere s.mu tomado (lectura o escritura).
func (s *Store) ownsPetLocked(accountID, petID int64) bool {
	p, ok := s.pets[petID]
	return ok && p.accountID == accountID
}

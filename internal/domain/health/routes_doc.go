package health

import "net/http"

// Un handler por ruta para que swag genere la documentación de cada una.

type (
	recordResource      = resource[Record, RecordInput, recordRequest]
	medicationResource  = resource[Medication, MedicationInput, medicationRequest]
	vaccinationResource = resource[Vaccination, VaccinationInput, vaccinationRequest]
	vetVisitResource    = resource[VetVisit, VetVisitInput, vetVisitRequest]
)

// listRecordsHandler godoc
// @Summary Listar registros de salud
// @Description Registros de la mascota ordenados por record_date descendente. 404 si la mascota no es de la cuenta.
// @Tags health
// @Produce json
// @Security BearerAuth
// @Param petID path int true "ID de la mascota"
// @Success 200 {array} recordResponse
// @Failure 404 {object} map[string]string "Pet not found"
// @Router /health/pets/{petID}/records [get]
func listRecordsHandler(res recordResource) http.HandlerFunc { return res.list() }

// createRecordHandler godoc
// @Summary Crear registro de salud
// @Description recordDate es obligatorio (YYYY-MM-DD). weight y temperature aceptan número o string numérica.
// @Tags health
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param petID path int true "ID de la mascota"
// @Param payload body recordRequest true "Registro"
// @Success 201 {object} recordResponse
// @Failure 400 {object} map[string]string "validación"
// @Failure 404 {object} map[string]string "Pet not found"
// @Router /health/pets/{petID}/records [post]
func createRecordHandler(res recordResource) http.HandlerFunc { return res.create() }

// getRecordHandler godoc
// @Summary Obtener registro de salud
// @Tags health
// @Produce json
// @Security BearerAuth
// @Param petID path int true "ID de la mascota"
// @Param id path int true "ID del registro"
// @Success 200 {object} recordResponse
// @Failure 404 {object} map[string]string "Health record not found"
// @Router /health/pets/{petID}/records/{id} [get]
func getRecordHandler(res recordResource) http.HandlerFunc { return res.get() }

// updateRecordHandler godoc
// @Summary Actualizar registro de salud
// @Description Reemplazo completo; refresca updated_at.
// @Tags health
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param petID path int true "ID de la mascota"
// @Param id path int true "ID del registro"
// @Param payload body recordRequest true "Registro completo"
// @Success 200 {object} recordResponse
// @Failure 400 {object} map[string]string "validación"
// @Failure 404 {object} map[string]string "Health record not found"
// @Router /health/pets/{petID}/records/{id} [put]
func updateRecordHandler(res recordResource) http.HandlerFunc { return res.update() }

// deleteRecordHandler godoc
// @Summary Eliminar registro de salud
// @Tags health
// @Produce json
// @Security BearerAuth
// @Param petID path int true "ID de la mascota"
// @Param id path int true "ID del registro"
// @Success 200 {object} respond.MessageBody
// @Failure 404 {object} map[string]string "Health record not found"
// @Router /health/pets/{petID}/records/{id} [delete]
func deleteRecordHandler(res recordResource) http.HandlerFunc {
	return res.delete("Health record deleted successfully")
}

// listMedicationsHandler godoc
// @Summary Listar medicaciones
// @Description Ordenadas por start_date descendente.
// @Tags health
// @Produce json
// @Security BearerAuth
// @Param petID path int true "ID de la mascota"
// @Success 200 {array} medicationResponse
// @Failure 404 {object} map[string]string "Pet not found"
// @Router /health/pets/{petID}/medications [get]
func listMedicationsHandler(res medicationResource) http.HandlerFunc { return res.list() }

// createMedicationHandler godoc
// @Summary Crear medicación
// @Description name y startDate son obligatorios. active es true si se omite.
// @Tags health
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param petID path int true "ID de la mascota"
// @Param payload body medicationRequest true "Medicación"
// @Success 201 {object} medicationResponse
// @Failure 400 {object} map[string]string "validación"
// @Failure 404 {object} map[string]string "Pet not found"
// @Router /health/pets/{petID}/medications [post]
func createMedicationHandler(res medicationResource) http.HandlerFunc { return res.create() }

// getMedicationHandler godoc
// @Summary Obtener medicación
// @Tags health
// @Produce json
// @Security BearerAuth
// @Param petID path int true "ID de la mascota"
// @Param id path int true "ID de la medicación"
// @Success 200 {object} medicationResponse
// @Failure 404 {object} map[string]string "Medication not found"
// @Router /health/pets/{petID}/medications/{id} [get]
func getMedicationHandler(res medicationResource) http.HandlerFunc { return res.get() }

// updateMedicationHandler godoc
// @Summary Actualizar medicación
// @Description Reemplazo completo. active no se deriva de endDate.
// @Tags health
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param petID path int true "ID de la mascota"
// @Param id path int true "ID de la medicación"
// @Param payload body medicationRequest true "Medicación completa"
// @Success 200 {object} medicationResponse
// @Failure 400 {object} map[string]string "validación"
// @Failure 404 {object} map[string]string "Medication not found"
// @Router /health/pets/{petID}/medications/{id} [put]
func updateMedicationHandler(res medicationResource) http.HandlerFunc { return res.update() }

// deleteMedicationHandler godoc
// @Summary Eliminar medicación
// @Tags health
// @Produce json
// @Security BearerAuth
// @Param petID path int true "ID de la mascota"
// @Param id path int true "ID de la medicación"
// @Success 200 {object} respond.MessageBody
// @Failure 404 {object} map[string]string "Medication not found"
// @Router /health/pets/{petID}/medications/{id} [delete]
func deleteMedicationHandler(res medicationResource) http.HandlerFunc {
	return res.delete("Medication deleted successfully")
}

// listVaccinationsHandler godoc
// @Summary Listar vacunas
// @Description Ordenadas por vaccination_date descendente.
// @Tags health
// @Produce json
// @Security BearerAuth
// @Param petID path int true "ID de la mascota"
// @Success 200 {array} vaccinationResponse
// @Failure 404 {object} map[string]string "Pet not found"
// @Router /health/pets/{petID}/vaccinations [get]
func listVaccinationsHandler(res vaccinationResource) http.HandlerFunc { return res.list() }

// createVaccinationHandler godoc
// @Summary Registrar vacuna
// @Description vaccineName y vaccinationDate son obligatorios.
// @Tags health
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param petID path int true "ID de la mascota"
// @Param payload body vaccinationRequest true "Vacuna"
// @Success 201 {object} vaccinationResponse
// @Failure 400 {object} map[string]string "validación"
// @Failure 404 {object} map[string]string "Pet not found"
// @Router /health/pets/{petID}/vaccinations [post]
func createVaccinationHandler(res vaccinationResource) http.HandlerFunc { return res.create() }

// getVaccinationHandler godoc
// @Summary Obtener vacuna
// @Tags health
// @Produce json
// @Security BearerAuth
// @Param petID path int true "ID de la mascota"
// @Param id path int true "ID de la vacuna"
// @Success 200 {object} vaccinationResponse
// @Failure 404 {object} map[string]string "Vaccination not found"
// @Router /health/pets/{petID}/vaccinations/{id} [get]
func getVaccinationHandler(res vaccinationResource) http.HandlerFunc { return res.get() }

// updateVaccinationHandler godoc
// @Summary Actualizar vacuna
// @Tags health
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param petID path int true "ID de la mascota"
// @Param id path int true "ID de la vacuna"
// @Param payload body vaccinationRequest true "Vacuna completa"
// @Success 200 {object} vaccinationResponse
// @Failure 400 {object} map[string]string "validación"
// @Failure 404 {object} map[string]string "Vaccination not found"
// @Router /health/pets/{petID}/vaccinations/{id} [put]
func updateVaccinationHandler(res vaccinationResource) http.HandlerFunc { return res.update() }

// deleteVaccinationHandler godoc
// @Summary Eliminar vacuna
// @Tags health
// @Produce json
// @Security BearerAuth
// @Param petID path int true "ID de la mascota"
// @Param id path int true "ID de la vacuna"
// @Success 200 {object} respond.MessageBody
// @Failure 404 {object} map[string]string "Vaccination not found"
// @Router /health/pets/{petID}/vaccinations/{id} [delete]
func deleteVaccinationHandler(res vaccinationResource) http.HandlerFunc {
	return res.delete("Vaccination deleted successfully")
}

// listVetVisitsHandler godoc
// @Summary Listar visitas al veterinario
// @Description Ordenadas por visit_date descendente.
// @Tags health
// @Produce json
// @Security BearerAuth
// @Param petID path int true "ID de la mascota"
// @Success 200 {array} vetVisitResponse
// @Failure 404 {object} map[string]string "Pet not found"
// @Router /health/pets/{petID}/vet-visits [get]
func listVetVisitsHandler(res vetVisitResource) http.HandlerFunc { return res.list() }

// createVetVisitHandler godoc
// @Summary Registrar visita al veterinario
// @Description visitDate es obligatorio. cost acepta número o string numérica.
// @Tags health
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param petID path int true "ID de la mascota"
// @Param payload body vetVisitRequest true "Visita"
// @Success 201 {object} vetVisitResponse
// @Failure 400 {object} map[string]string "validación"
// @Failure 404 {object} map[string]string "Pet not found"
// @Router /health/pets/{petID}/vet-visits [post]
func createVetVisitHandler(res vetVisitResource) http.HandlerFunc { return res.create() }

// getVetVisitHandler godoc
// @Summary Obtener visita al veterinario
// @Tags health
// @Produce json
// @Security BearerAuth
// @Param petID path int true "ID de la mascota"
// @Param id path int true "ID de la visita"
// @Success 200 {object} vetVisitResponse
// @Failure 404 {object} map[string]string "Vet visit not found"
// @Router /health/pets/{petID}/vet-visits/{id} [get]
func getVetVisitHandler(res vetVisitResource) http.HandlerFunc { return res.get() }

// updateVetVisitHandler godoc
// @Summary Actualizar visita al veterinario
// @Tags health
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param petID path int true "ID de la mascota"
// @Param id path int true "ID de la visita"
// @Param payload body vetVisitRequest true "Visita completa"
// @Success 200 {object} vetVisitResponse
// @Failure 400 {object} map[string]string "validación"
// @Failure 404 {object} map[string]string "Vet visit not found"
// @Router /health/pets/{petID}/vet-visits/{id} [put]
func updateVetVisitHandler(res vetVisitResource) http.HandlerFunc { return res.update() }

// deleteVetVisitHandler godoc
// @Summary Eliminar visita al veterinario
// @Tags health
// @Produce json
// @Security BearerAuth
// @Param petID path int true "ID de la mascota"
// @Param id path int true "ID de la visita"
// @Success 200 {object} respond.MessageBody
// @Failure 404 {object} map[string]string "Vet visit not found"
// @Router /health/pets/{petID}/vet-visits/{id} [delete]
func deleteVetVisitHandler(res vetVisitResource) http.HandlerFunc {
	return res.delete("Vet visit deleted successfully")
}

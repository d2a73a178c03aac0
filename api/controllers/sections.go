package controllers

import (
	"net/http"

	"github.com/resumehub/resumehub-backend/internal/resources"
	"github.com/resumehub/resumehub-backend/pkg/logger"
)

// Professional summaries.

func SummariesCreate(svc *resources.SummariesService, logg *logger.Logger) http.HandlerFunc {
	return resourceCreate[resources.CreateSummaryRequest, resources.UpdateSummaryRequest, resources.SummaryDTO](svc, "professional summary", logg)
}

func SummariesList(svc *resources.SummariesService, logg *logger.Logger) http.HandlerFunc {
	return resourceList[resources.CreateSummaryRequest, resources.UpdateSummaryRequest, resources.SummaryDTO](svc, logg)
}

func SummariesUpdate(svc *resources.SummariesService, logg *logger.Logger) http.HandlerFunc {
	return resourceUpdate[resources.CreateSummaryRequest, resources.UpdateSummaryRequest, resources.SummaryDTO](svc, "professional summary", logg)
}

func SummariesDelete(svc *resources.SummariesService, logg *logger.Logger) http.HandlerFunc {
	return resourceDelete[resources.CreateSummaryRequest, resources.UpdateSummaryRequest, resources.SummaryDTO](svc, "professional summary", logg)
}

// Work experiences.

func WorkExperiencesCreate(svc *resources.WorkExperiencesService, logg *logger.Logger) http.HandlerFunc {
	return resourceCreate[resources.CreateWorkExperienceRequest, resources.UpdateWorkExperienceRequest, resources.WorkExperienceDTO](svc, "work experience", logg)
}

func WorkExperiencesList(svc *resources.WorkExperiencesService, logg *logger.Logger) http.HandlerFunc {
	return resourceList[resources.CreateWorkExperienceRequest, resources.UpdateWorkExperienceRequest, resources.WorkExperienceDTO](svc, logg)
}

func WorkExperiencesUpdate(svc *resources.WorkExperiencesService, logg *logger.Logger) http.HandlerFunc {
	return resourceUpdate[resources.CreateWorkExperienceRequest, resources.UpdateWorkExperienceRequest, resources.WorkExperienceDTO](svc, "work experience", logg)
}

func WorkExperiencesDelete(svc *resources.WorkExperiencesService, logg *logger.Logger) http.HandlerFunc {
	return resourceDelete[resources.CreateWorkExperienceRequest, resources.UpdateWorkExperienceRequest, resources.WorkExperienceDTO](svc, "work experience", logg)
}

// Projects.

func ProjectsCreate(svc *resources.ProjectsService, logg *logger.Logger) http.HandlerFunc {
	return resourceCreate[resources.CreateProjectRequest, resources.UpdateProjectRequest, resources.ProjectDTO](svc, "project", logg)
}

func ProjectsList(svc *resources.ProjectsService, logg *logger.Logger) http.HandlerFunc {
	return resourceList[resources.CreateProjectRequest, resources.UpdateProjectRequest, resources.ProjectDTO](svc, logg)
}

func ProjectsUpdate(svc *resources.ProjectsService, logg *logger.Logger) http.HandlerFunc {
	return resourceUpdate[resources.CreateProjectRequest, resources.UpdateProjectRequest, resources.ProjectDTO](svc, "project", logg)
}

func ProjectsDelete(svc *resources.ProjectsService, logg *logger.Logger) http.HandlerFunc {
	return resourceDelete[resources.CreateProjectRequest, resources.UpdateProjectRequest, resources.ProjectDTO](svc, "project", logg)
}

// Skills.

func SkillsCreate(svc *resources.SkillsService, logg *logger.Logger) http.HandlerFunc {
	return resourceCreate[resources.CreateSkillRequest, resources.UpdateSkillRequest, resources.SkillDTO](svc, "skill", logg)
}

func SkillsList(svc *resources.SkillsService, logg *logger.Logger) http.HandlerFunc {
	return resourceList[resources.CreateSkillRequest, resources.UpdateSkillRequest, resources.SkillDTO](svc, logg)
}

func SkillsUpdate(svc *resources.SkillsService, logg *logger.Logger) http.HandlerFunc {
	return resourceUpdate[resources.CreateSkillRequest, resources.UpdateSkillRequest, resources.SkillDTO](svc, "skill", logg)
}

func SkillsDelete(svc *resources.SkillsService, logg *logger.Logger) http.HandlerFunc {
	return resourceDelete[resources.CreateSkillRequest, resources.UpdateSkillRequest, resources.SkillDTO](svc, "skill", logg)
}

// Education.

func EducationCreate(svc *resources.EducationService, logg *logger.Logger) http.HandlerFunc {
	return resourceCreate[resources.CreateEducationRequest, resources.UpdateEducationRequest, resources.EducationDTO](svc, "education", logg)
}

func EducationList(svc *resources.EducationService, logg *logger.Logger) http.HandlerFunc {
	return resourceList[resources.CreateEducationRequest, resources.UpdateEducationRequest, resources.EducationDTO](svc, logg)
}

func EducationUpdate(svc *resources.EducationService, logg *logger.Logger) http.HandlerFunc {
	return resourceUpdate[resources.CreateEducationRequest, resources.UpdateEducationRequest, resources.EducationDTO](svc, "education", logg)
}

func EducationDelete(svc *resources.EducationService, logg *logger.Logger) http.HandlerFunc {
	return resourceDelete[resources.CreateEducationRequest, resources.UpdateEducationRequest, resources.EducationDTO](svc, "education", logg)
}

// Certifications.

func CertificationsCreate(svc *resources.CertificationsService, logg *logger.Logger) http.HandlerFunc {
	return resourceCreate[resources.CreateCertificationRequest, resources.UpdateCertificationRequest, resources.CertificationDTO](svc, "certification", logg)
}

func CertificationsList(svc *resources.CertificationsService, logg *logger.Logger) http.HandlerFunc {
	return resourceList[resources.CreateCertificationRequest, resources.UpdateCertificationRequest, resources.CertificationDTO](svc, logg)
}

func CertificationsUpdate(svc *resources.CertificationsService, logg *logger.Logger) http.HandlerFunc {
	return resourceUpdate[resources.CreateCertificationRequest, resources.UpdateCertificationRequest, resources.CertificationDTO](svc, "certification", logg)
}

func CertificationsDelete(svc *resources.CertificationsService, logg *logger.Logger) http.HandlerFunc {
	return resourceDelete[resources.CreateCertificationRequest, resources.UpdateCertificationRequest, resources.CertificationDTO](svc, "certification", logg)
}

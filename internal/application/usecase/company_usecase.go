package usecase

import (
	"github.com/SocketStudioec/ITAssetManager/internal/application/auth"
	"github.com/SocketStudioec/ITAssetManager/internal/application/dto"
	"github.com/SocketStudioec/ITAssetManager/internal/domain/repository"
)

// CompanyUseCase consultas sobre empresas y membresías.
type CompanyUseCase struct {
	companyRepo repository.CompanyRepository
	linkRepo    repository.UserCompanyRepository
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(companyRepo repository.CompanyRepository, linkRepo repository.UserCompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{companyRepo: companyRepo, linkRepo: linkRepo}
}

// Memberships devuelve las empresas del usuario con su rol en cada una
// (GET /companies).
func (uc *CompanyUseCase) Memberships(userID string) ([]dto.MembershipResponse, error) {
	memberships, err := uc.linkRepo.ListMemberships(userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MembershipResponse, 0, len(memberships))
	for _, m := range memberships {
		out = append(out, dto.MembershipResponse{
			Company: auth.ToCompanyResponse(&m.Company),
			Role:    m.Role,
		})
	}
	return out, nil
}

// ListAll devuelve todas las empresas del sistema (solo super_admin).
func (uc *CompanyUseCase) ListAll(limit, offset int) ([]dto.CompanyResponse, error) {
	companies, err := uc.companyRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CompanyResponse, 0, len(companies))
	for _, c := range companies {
		out = append(out, auth.ToCompanyResponse(c))
	}
	return out, nil
}

package mapper

import (
	"testdesk-be/internal/entity"
	"testdesk-be/internal/model"
)

type ProofFileMapper struct{}

func NewProofFileMapper() *ProofFileMapper {
	return &ProofFileMapper{}
}

func (m *ProofFileMapper) ToEntity(p *model.ProofFile) *entity.ProofFile {
	if p == nil {
		return nil
	}
	return &entity.ProofFile{
		Id:             p.Id,
		StepId:         p.StepId,
		StoredFilename: p.StoredFilename,
		ContentType:    p.ContentType,
		CreatedAt:      p.CreatedAt,
	}
}

func (m *ProofFileMapper) ToModel(p *entity.ProofFile) *model.ProofFile {
	if p == nil {
		return nil
	}
	return &model.ProofFile{
		Id:             p.Id,
		StepId:         p.StepId,
		StoredFilename: p.StoredFilename,
		ContentType:    p.ContentType,
		CreatedAt:      p.CreatedAt,
	}
}

func (m *ProofFileMapper) ToEntities(proofs []*model.ProofFile) []*entity.ProofFile {
	entities := make([]*entity.ProofFile, len(proofs))
	for i, p := range proofs {
		entities[i] = m.ToEntity(p)
	}
	return entities
}

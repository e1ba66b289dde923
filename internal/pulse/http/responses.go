package http

import (
	"github.com/julien-sketch/progressive-pulse/internal/pulse/domain"
	"github.com/julien-sketch/progressive-pulse/pkg/pulsesdk"
)

func toProjectInfo(p domain.Project, includeToken bool) pulsesdk.ProjectInfo {
	info := pulsesdk.ProjectInfo{
		ID:              p.ID,
		ClientName:      p.ClientName,
		Category:        string(p.Category),
		ProgressPercent: p.ProgressPercent,
		StatusText:      p.StatusText,
		DriveFolder:     p.DriveFolder,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
	if includeToken {
		info.AccessToken = p.AccessToken
	}
	return info
}

func toProjectInfos(projects []domain.Project, includeToken bool) []pulsesdk.ProjectInfo {
	infos := make([]pulsesdk.ProjectInfo, len(projects))
	for i, p := range projects {
		infos[i] = toProjectInfo(p, includeToken)
	}
	return infos
}

func toStepInfos(steps []domain.Step) []pulsesdk.StepInfo {
	infos := make([]pulsesdk.StepInfo, len(steps))
	for i, s := range steps {
		infos[i] = pulsesdk.StepInfo{
			Step:        s.OrderIndex,
			Label:       s.Label,
			Completed:   s.Completed,
			CompletedAt: s.CompletedAt,
		}
	}
	return infos
}

func toDocumentInfos(docs []domain.Document) []pulsesdk.DocumentInfo {
	infos := make([]pulsesdk.DocumentInfo, len(docs))
	for i, d := range docs {
		infos[i] = pulsesdk.DocumentInfo{
			ID:          d.ID,
			FileName:    d.FileName,
			ContentType: d.ContentType,
			SizeBytes:   d.SizeBytes,
			CreatedAt:   d.CreatedAt,
		}
	}
	return infos
}

package mock

import (
	"time"

	"github.com/lacosdigitais/lacosctl/internal/domain/model"
)

func fixtureArticles() []model.Article {
	return []model.Article{
		{
			ID:        1,
			Title:     "Dependência de Internet em Adolescentes: Um Estudo Longitudinal",
			Authors:   "Dra. Maria Silva, Dr. João Santos, Prof. Carlos Oliveira",
			Summary:   "Estudo de 2 anos analisando o impacto do uso excessivo de internet no desenvolvimento cognitivo e social de adolescentes entre 13-18 anos.",
			Category:  model.CategoryResearch,
			URL:       "https://exemplo.com/artigo1.pdf",
			Keywords:  "dependência digital, adolescentes, saúde mental",
			Status:    model.ArticleStatusApproved,
			Views:     1245,
			CreatedAt: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:        2,
			Title:     "Estratégias de Prevenção na Escola",
			Authors:   "Prof. Ana Costa, Dra. Beatriz Lima",
			Summary:   "Abordagens pedagógicas para prevenir a dependência digital em ambiente escolar com foco em educação digital.",
			Category:  model.CategoryPrevention,
			URL:       "https://exemplo.com/artigo2.pdf",
			Keywords:  "prevenção, escola, educação digital",
			Status:    model.ArticleStatusPending,
			CreatedAt: time.Date(2024, 1, 20, 14, 15, 0, 0, time.UTC),
		},
		{
			ID:              3,
			Title:           "Terapia Cognitivo-Comportamental para Dependência Digital",
			Authors:         "Dr. Pedro Almeida, Dra. Fernanda Rodrigues",
			Summary:         "Aplicação de técnicas de TCC no tratamento de casos graves de dependência digital com resultados promissores.",
			Category:        model.CategoryTreatment,
			URL:             "https://exemplo.com/artigo3.pdf",
			Keywords:        "TCC, tratamento, terapia",
			Status:          model.ArticleStatusRejected,
			Views:           320,
			RejectionReason: "Necessita de aprovação do comitê de ética",
			CreatedAt:       time.Date(2024, 1, 10, 9, 45, 0, 0, time.UTC),
		},
	}
}

func fixtureQuizzes() []model.Quiz {
	return []model.Quiz{
		{
			ID:          1,
			Title:       "Autoavaliação de Uso de Internet",
			Description: "Questionário rápido para avaliar sinais de uso problemático.",
			Questions: []model.QuizQuestion{
				{
					ID:      1,
					Text:    "Com que frequência você perde a noção do tempo online?",
					Options: []string{"Nunca", "Às vezes", "Frequentemente", "Sempre"},
				},
				{
					ID:      2,
					Text:    "Você já deixou de dormir para ficar conectado?",
					Options: []string{"Nunca", "Raramente", "Algumas vezes por semana", "Todos os dias"},
				},
			},
			CreatedAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		},
	}
}

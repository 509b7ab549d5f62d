package domain

import (
	"errors"
	"sort"
)

// Category identifica uma das agregações que compõem os valuable moments
type Category string

const (
	CategoryEmails                      Category = "emails"
	CategoryQuestions                   Category = "questions"
	CategorySocialPosts                 Category = "social"
	CategoryContent                     Category = "content"
	CategoryPriceSensitiveAnnouncements Category = "price_sensitive_announcements"
	CategoryDraftAnnouncements          Category = "draft_announcements"
	CategoryDraftReports                Category = "draft_reports"
)

// Categories retorna as sete categorias consultadas em cada agregação
func Categories() []Category {
	return []Category{
		CategoryEmails,
		CategoryQuestions,
		CategorySocialPosts,
		CategoryContent,
		CategoryPriceSensitiveAnnouncements,
		CategoryDraftAnnouncements,
		CategoryDraftReports,
	}
}

// DetailType são os tipos aceitos pelo endpoint de detalhes
type DetailType string

const (
	DetailEmails    DetailType = "emails"
	DetailQuestions DetailType = "questions"
	DetailSocial    DetailType = "social"
	DetailContent   DetailType = "content"
)

var ErrInvalidDetailType = errors.New("invalid detail type")

func ParseDetailType(value string) (DetailType, error) {
	switch DetailType(value) {
	case DetailEmails, DetailQuestions, DetailSocial, DetailContent:
		return DetailType(value), nil
	}
	return "", ErrInvalidDetailType
}

// MomentFilter delimita uma agregação. BusinessIDs vazio significa todas as empresas.
type MomentFilter struct {
	BusinessIDs []int64
	DateRange   DateRange
}

// CategoryCount é uma linha de resultado de uma consulta por categoria.
// SubCount só é preenchido pela categoria social (posts feitos pela plataforma).
type CategoryCount struct {
	BusinessID   int64
	BusinessName string
	Count        int64
	SubCount     int64
}

// BusinessMetricRecord consolida as contagens de uma empresa no período
type BusinessMetricRecord struct {
	BusinessID                  int64  `json:"businessId"`
	BusinessName                string `json:"businessName"`
	EmailsSent                  int64  `json:"emailsSent"`
	QuestionsAnswered           int64  `json:"questionsAnswered"`
	SocialPosts                 int64  `json:"socialPosts"`
	SocialPostsViaPlatform      int64  `json:"socialPostsViaPlatform"`
	ContentAdded                int64  `json:"contentAdded"`
	PriceSensitiveAnnouncements int64  `json:"priceSensitiveAnnouncements"`
	DraftAnnouncements          int64  `json:"draftAnnouncements"`
	DraftReports                int64  `json:"draftReports"`
	TotalVM                     int64  `json:"totalVM"`
}

// CalculateTotal soma as categorias que contam como valuable moment.
// Anúncios price sensitive e o sub-total de posts via plataforma ficam de fora.
func (r *BusinessMetricRecord) CalculateTotal() int64 {
	r.TotalVM = r.EmailsSent +
		r.QuestionsAnswered +
		r.SocialPosts +
		r.ContentAdded +
		r.DraftAnnouncements +
		r.DraftReports
	return r.TotalVM
}

func (r *BusinessMetricRecord) apply(category Category, row CategoryCount) {
	count := nonNegative(row.Count)

	switch category {
	case CategoryEmails:
		r.EmailsSent = count
	case CategoryQuestions:
		r.QuestionsAnswered = count
	case CategorySocialPosts:
		r.SocialPosts = count
		r.SocialPostsViaPlatform = nonNegative(row.SubCount)
	case CategoryContent:
		r.ContentAdded = count
	case CategoryPriceSensitiveAnnouncements:
		r.PriceSensitiveAnnouncements = count
	case CategoryDraftAnnouncements:
		r.DraftAnnouncements = count
	case CategoryDraftReports:
		r.DraftReports = count
	}
}

// MergeCategoryCounts une as empresas de todos os resultados por categoria.
// Uma empresa ausente de uma categoria fica com zero nela.
func MergeCategoryCounts(results map[Category][]CategoryCount) []BusinessMetricRecord {
	records := make(map[int64]*BusinessMetricRecord)

	for _, category := range Categories() {
		for _, row := range results[category] {
			record, ok := records[row.BusinessID]
			if !ok {
				record = &BusinessMetricRecord{
					BusinessID:   row.BusinessID,
					BusinessName: row.BusinessName,
				}
				records[row.BusinessID] = record
			}

			if record.BusinessName == "" {
				record.BusinessName = row.BusinessName
			}

			record.apply(category, row)
		}
	}

	merged := make([]BusinessMetricRecord, 0, len(records))
	for _, record := range records {
		record.CalculateTotal()
		merged = append(merged, *record)
	}

	sort.Slice(merged, func(i, j int) bool {
		if merged[i].BusinessName != merged[j].BusinessName {
			return merged[i].BusinessName < merged[j].BusinessName
		}
		return merged[i].BusinessID < merged[j].BusinessID
	})

	return merged
}

// MomentTotals são os totais exibidos no cabeçalho do dashboard
type MomentTotals struct {
	TotalVMAll      int64   `json:"totalVMAll"`
	AvgVMPerCompany float64 `json:"avgVMPerCompany"`
}

func CalculateTotals(records []BusinessMetricRecord) MomentTotals {
	totals := MomentTotals{}
	for _, record := range records {
		totals.TotalVMAll += record.TotalVM
	}

	if len(records) > 0 {
		totals.AvgVMPerCompany = float64(totals.TotalVMAll) / float64(len(records))
	}

	return totals
}

// ValuableMomentsReport é a resposta do agregador
type ValuableMomentsReport struct {
	Records []BusinessMetricRecord
	Totals  MomentTotals
}

// DailyMoment é um ponto da série diária
type DailyMoment struct {
	Date            string `json:"date"`
	TotalMoments    int64  `json:"total_moments"`
	CumulativeTotal int64  `json:"cumulative_total"`
}

// MomentDetail é uma linha do detalhamento por tipo
type MomentDetail struct {
	Date    string  `json:"date"`
	Content string  `json:"content"`
	Type    *string `json:"type,omitempty"`
}

func nonNegative(v int64) int64 {
	if v < 0 {
		return 0
	}
	return v
}

package dto

import "inkwell-cms-api/internal/domain/repository"

// PageQuery 分页查询参数
type PageQuery struct {
	Page     int `form:"page"`
	PageSize int `form:"page_size"`
}

// ToPagination 转换为仓储层分页参数
func (q *PageQuery) ToPagination() repository.Pagination {
	return repository.NewPagination(q.Page, q.PageSize)
}

package api

import "techsnap/internal/domain"

func FromSnapshot(s domain.Snapshot) Snapshot {
	out := Snapshot{
		Techs:   make([]Tech, 0, len(s.Technologies)),
		Domains: make([]Domain, 0, len(s.Domains)),
	}
	for _, t := range s.Technologies {
		out.Techs = append(out.Techs, Tech{Name: t.Name, Category: t.Category, Cnt: t.Count})
	}
	for _, d := range s.Domains {
		out.Domains = append(out.Domains, fromSummary(d))
	}
	return out
}

func (s Snapshot) ToDomain() domain.Snapshot {
	out := domain.Snapshot{
		Technologies: make([]domain.TechnologyCount, 0, len(s.Techs)),
		Domains:      make([]domain.DomainSummary, 0, len(s.Domains)),
	}
	for _, t := range s.Techs {
		out.Technologies = append(out.Technologies, domain.TechnologyCount{Name: t.Name, Category: t.Category, Count: t.Cnt})
	}
	for _, d := range s.Domains {
		out.Domains = append(out.Domains, domain.DomainSummary{
			Domain: d.Domain, Company: d.Company, Hosting: d.Hosting, Status: d.Status, Technologies: d.Techs,
		})
	}
	return out
}

func FromWebsite(w domain.WebsiteDetail) Website {
	return Website{
		Domain:      w.Domain,
		Company:     w.Company,
		Hosting:     w.Hosting,
		Status:      w.Status,
		Techs:       nonNil(w.Technologies),
		Url:         w.URL,
		HttpStatus:  w.HTTPStatus,
		Title:       w.Title,
		LastScanned: w.LastScanned,
	}
}

func (w Website) ToDomain() domain.WebsiteDetail {
	return domain.WebsiteDetail{
		DomainSummary: domain.DomainSummary{
			Domain: w.Domain, Company: w.Company, Hosting: w.Hosting, Status: w.Status, Technologies: w.Techs,
		},
		URL:         w.Url,
		HTTPStatus:  w.HttpStatus,
		Title:       w.Title,
		LastScanned: w.LastScanned,
	}
}

func FromWebsites(ws []domain.WebsiteDetail) []Website {
	out := make([]Website, 0, len(ws))
	for _, w := range ws {
		out = append(out, FromWebsite(w))
	}
	return out
}

func WebsitesToDomain(ws []Website) []domain.WebsiteDetail {
	out := make([]domain.WebsiteDetail, 0, len(ws))
	for _, w := range ws {
		out = append(out, w.ToDomain())
	}
	return out
}

func FromWebsitePage(p domain.WebsitePage) WebsitePage {
	return WebsitePage{Items: FromWebsites(p.Items), Page: p.Page, PerPage: p.PerPage}
}

func (p WebsitePage) ToDomain() domain.WebsitePage {
	return domain.WebsitePage{Items: WebsitesToDomain(p.Items), Page: p.Page, PerPage: p.PerPage}
}

func FromStats(cs []domain.CategoryStats) Stats {
	out := Stats{Categories: make([]CategoryStats, 0, len(cs))}
	for _, c := range cs {
		techs := make([]TechCount, 0, len(c.Technologies))
		for _, t := range c.Technologies {
			techs = append(techs, TechCount{Name: t.Name, Count: t.Count})
		}
		out.Categories = append(out.Categories, CategoryStats{Category: c.Category, Technologies: techs})
	}
	return out
}

// ToDomain fills each technology's category from its group.
func (s Stats) ToDomain() []domain.CategoryStats {
	out := make([]domain.CategoryStats, 0, len(s.Categories))
	for _, c := range s.Categories {
		techs := make([]domain.TechnologyCount, 0, len(c.Technologies))
		for _, t := range c.Technologies {
			techs = append(techs, domain.TechnologyCount{Name: t.Name, Category: c.Category, Count: t.Count})
		}
		out = append(out, domain.CategoryStats{Category: c.Category, Technologies: techs})
	}
	return out
}

func fromSummary(d domain.DomainSummary) Domain {
	return Domain{Domain: d.Domain, Company: d.Company, Hosting: d.Hosting, Status: d.Status, Techs: nonNil(d.Technologies)}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

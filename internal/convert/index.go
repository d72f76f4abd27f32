package convert

import "github.com/kmyport-dev/kmyport/internal/kmyfile"

// Section paths for the entity kinds indexed by id, relative to the
// document root.
const (
	SectionAccounts     = "ACCOUNTS/ACCOUNT"
	SectionPayees       = "PAYEES/PAYEE"
	SectionInstitutions = "INSTITUTIONS/INSTITUTION"
	SectionTransactions = "TRANSACTIONS/TRANSACTION"
	SectionReports      = "REPORTS/REPORT"
	SectionCostCenters  = "COSTCENTERS/COSTCENTER"
	SectionTags         = "TAGS/TAG"
	SectionFileInfo     = "FILEINFO"
	SectionUser         = "USER"
)

// BuildIndex maps entity id to node handle for every node under the given
// section path. A missing section yields an empty map, since sections are
// optional in the source format. Duplicate ids resolve last-wins.
func BuildIndex(doc *kmyfile.Document, sectionPath string) map[string]kmyfile.Handle {
	nodes := doc.FindNodes(sectionPath)
	idx := make(map[string]kmyfile.Handle, len(nodes))
	for _, h := range nodes {
		id := doc.Attr(h, "id")
		if id == "" {
			continue
		}
		idx[id] = h
	}
	return idx
}

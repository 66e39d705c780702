package model

// Subject учебная дисциплина банка вопросов
type Subject struct {
	ID              string   `json:"id"`
	Code            string   `json:"code"`
	Name            string   `json:"name"`
	Credits         int      `json:"credits"`
	KnowledgeBlocks []string `json:"knowledgeBlocks"`
}

func (s Subject) GetID() string { return s.ID }

// HasKnowledgeBlock проверяет принадлежность блока знаний предмету.
// Предмет без объявленных блоков принимает любой блок.
func (s *Subject) HasKnowledgeBlock(block string) bool {
	if len(s.KnowledgeBlocks) == 0 {
		return true
	}
	for _, b := range s.KnowledgeBlocks {
		if b == block {
			return true
		}
	}
	return false
}

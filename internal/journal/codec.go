package journal

import (
	"errors"

	"github.com/bytedance/sonic"
	errorvalues "github.com/limbo/glowlog/internal/error_values"
	"github.com/limbo/glowlog/pkg/entity"
)

// EncodeDocument serializes the whole document. Map keys are sorted so equal documents encode equally.
func EncodeDocument(doc entity.Document) ([]byte, error) {
	data, err := sonic.ConfigStd.Marshal(doc)
	if err != nil {
		return nil, errors.New("encoding document error: " + err.Error())
	}
	return data, nil
}

// DecodeDocument parses stored bytes on top of the default profile, so profile
// fields that older data lacks keep their defaults while stored fields win.
func DecodeDocument(data []byte) (entity.Document, error) {
	doc := entity.Document{Profile: DefaultProfile()}
	if err := sonic.ConfigStd.Unmarshal(data, &doc); err != nil {
		return entity.Document{}, errors.Join(errorvalues.ErrCorruptDocument, err)
	}
	normalize(&doc)
	return doc, nil
}

func normalize(doc *entity.Document) {
	if doc.Logs == nil {
		doc.Logs = map[string]entity.DailyLog{}
	}
	for date, log := range doc.Logs {
		if log.Foods == nil {
			log.Foods = []entity.FoodItem{}
		}
		if log.Exercises == nil {
			log.Exercises = []entity.ExerciseItem{}
		}
		log.Date = date
		doc.Logs[date] = log
	}
}

package services_test

import (
	"context"
	"reflect"

	"github.com/golang/mock/gomock"
	"github.com/simhonchourasia/playbet-be/models"
	"github.com/simhonchourasia/playbet-be/services/mocks"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"go.mongodb.org/mongo-driver/mongo"
)

var errDuplicate = mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000, Message: "E11000 duplicate key error"}}}

func nullLogger() logrus.FieldLogger {
	logger, _ := test.NewNullLogger()
	return logger
}

// expectSetting makes the settings store decode value for typ.
func expectSetting(store *mocks.MockSettingsStore, typ models.SettingType, value interface{}) *gomock.Call {
	return store.EXPECT().
		Get(gomock.Any(), typ, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.SettingType, out interface{}) error {
			reflect.ValueOf(out).Elem().Set(reflect.ValueOf(value))
			return nil
		})
}

func expectNoSetting(store *mocks.MockSettingsStore, typ models.SettingType) *gomock.Call {
	return store.EXPECT().Get(gomock.Any(), typ, gomock.Any()).Return(mongo.ErrNoDocuments)
}

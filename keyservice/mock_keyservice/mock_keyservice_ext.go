package mock_keyservice

import (
	"go.uber.org/mock/gomock"

	"github.com/anyproto/any-keys/keyservice"
)

// NewKeyService returns a mock that can be registered in an app
func NewKeyService(ctrl *gomock.Controller) *MockService {
	mock := NewMockService(ctrl)
	mock.EXPECT().Name().Return(keyservice.CName).AnyTimes()
	mock.EXPECT().Init(gomock.Any()).AnyTimes()
	return mock
}

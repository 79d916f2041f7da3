package io

import (
	"testing"

	"github.com/stretchr/testify/mock"
)

type mockFsProvider struct {
	mock.Mock
}

func newMockFsProvider(t *testing.T) *mockFsProvider {
	t.Helper()

	m := &mockFsProvider{}
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *mockFsProvider) BackupPath(original string, suffix string) (string, error) {
	args := m.Called(original, suffix)

	return args.String(0), args.Error(1)
}

func (m *mockFsProvider) Exists(path string) (bool, error) {
	args := m.Called(path)

	return args.Bool(0), args.Error(1)
}

type mockOsProvider struct {
	mock.Mock
}

func newMockOsProvider(t *testing.T) *mockOsProvider {
	t.Helper()

	m := &mockOsProvider{}
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *mockOsProvider) EvalSymlinks(path string) (string, error) {
	args := m.Called(path)

	return args.String(0), args.Error(1)
}

func (m *mockOsProvider) Remove(name string) error {
	return m.Called(name).Error(0)
}

func (m *mockOsProvider) Rename(oldpath, newpath string) error {
	return m.Called(oldpath, newpath).Error(0)
}

type mockUnixProvider struct {
	mock.Mock
}

func newMockUnixProvider(t *testing.T) *mockUnixProvider {
	t.Helper()

	m := &mockUnixProvider{}
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *mockUnixProvider) Link(oldpath, newpath string) error {
	return m.Called(oldpath, newpath).Error(0)
}

func (m *mockUnixProvider) Mkdir(path string, mode uint32) error {
	return m.Called(path, mode).Error(0)
}

func (m *mockUnixProvider) Symlink(oldpath, newpath string) error {
	return m.Called(oldpath, newpath).Error(0)
}

package store

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/sidebar-builder/pkg/models"
)

type recordingPersister struct {
	mu       sync.Mutex
	settings []models.Settings
	content  []*models.Content
	err      error
	block    chan struct{}
}

func (p *recordingPersister) SaveSettings(s models.Settings) error {
	if p.block != nil {
		<-p.block
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.settings = append(p.settings, s)
	return p.err
}

func (p *recordingPersister) SaveContent(c *models.Content) error {
	if p.block != nil {
		<-p.block
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.content = append(p.content, c)
	return p.err
}

func TestWidthComposition(t *testing.T) {
	s := NewSettingsStore(models.DefaultSettings())

	require.NoError(t, s.SetSidebarWidthValue("20"))
	require.NoError(t, s.SetSidebarWidthUnit(models.UnitRem))
	assert.Equal(t, "20rem", s.Snapshot().SidebarWidth)

	require.NoError(t, s.SetSidebarWidthUnit(models.UnitPx))
	snap := s.Snapshot()
	assert.Equal(t, "20px", snap.SidebarWidth)
	assert.Equal(t, "20", snap.SidebarWidthValue)

	require.NoError(t, s.SetSidebarMobileWidthValue("3"))
	require.NoError(t, s.SetSidebarMobileWidthUnit(models.UnitEm))
	assert.Equal(t, "3em", s.Snapshot().SidebarMobileWidth)
	assert.Equal(t, "20px", s.Snapshot().SidebarWidth)
}

func TestSettersRejectValuesOutsideEnumeration(t *testing.T) {
	s := NewSettingsStore(models.DefaultSettings())
	before := s.Snapshot()

	errs := []error{
		s.SetSidebarPosition("top"),
		s.SetSidebarVariant("modal"),
		s.SetSidebarWidthUnit("pt"),
		s.SetSidebarMobileWidthUnit(""),
		s.SetSidebarWidthValue("wide"),
		s.SetSidebarMobileWidthValue(""),
		s.SetCollapseBehavior("hidden"),
		s.SetMenuButtonSize("xl"),
		s.SetActiveTab("docs"),
	}

	for _, err := range errs {
		require.Error(t, err)
		var ve *models.ValidationError
		assert.True(t, errors.As(err, &ve), err.Error())
	}
	assert.Equal(t, before, s.Snapshot())
}

func TestSettersReplaceFields(t *testing.T) {
	s := NewSettingsStore(models.DefaultSettings())

	require.NoError(t, s.SetSidebarPosition(models.PositionRight))
	require.NoError(t, s.SetSidebarVariant(models.VariantInset))
	require.NoError(t, s.SetCollapseBehavior(models.CollapseOffcanvas))
	require.NoError(t, s.SetMenuButtonSize(models.ButtonSizeSmall))
	require.NoError(t, s.SetActiveTab(models.TabCode))
	s.SetDefaultOpen(false)
	s.SetEnableKeyboardShortcuts(false)
	s.SetShowHeader(false)
	s.SetShowFooter(false)
	s.SetShowIcons(false)
	s.SetShowSectionLabels(false)

	got := s.Snapshot()
	assert.Equal(t, models.PositionRight, got.SidebarPosition)
	assert.Equal(t, models.VariantInset, got.SidebarVariant)
	assert.Equal(t, models.CollapseOffcanvas, got.CollapseBehavior)
	assert.Equal(t, models.ButtonSizeSmall, got.MenuButtonSize)
	assert.Equal(t, models.TabCode, got.ActiveTab)
	assert.False(t, got.DefaultOpen)
	assert.False(t, got.EnableKeyboardShortcuts)
	assert.False(t, got.ShowHeader)
	assert.False(t, got.ShowFooter)
	assert.False(t, got.ShowIcons)
	assert.False(t, got.ShowSectionLabels)

	s.Reset()
	assert.Equal(t, models.DefaultSettings(), s.Snapshot())
}

func TestSetByName(t *testing.T) {
	tests := []struct {
		field   string
		value   string
		wantErr string
		check   func(t *testing.T, s models.Settings)
	}{
		{field: "sidebar_position", value: "right", check: func(t *testing.T, s models.Settings) {
			assert.Equal(t, models.PositionRight, s.SidebarPosition)
		}},
		{field: "sidebar_width_value", value: " 24 ", check: func(t *testing.T, s models.Settings) {
			assert.Equal(t, "24rem", s.SidebarWidth)
		}},
		{field: "sidebar_mobile_width_unit", value: "%", check: func(t *testing.T, s models.Settings) {
			assert.Equal(t, "4%", s.SidebarMobileWidth)
		}},
		{field: "show_icons", value: "false", check: func(t *testing.T, s models.Settings) {
			assert.False(t, s.ShowIcons)
		}},
		{field: "default_open", value: "0", check: func(t *testing.T, s models.Settings) {
			assert.False(t, s.DefaultOpen)
		}},
		{field: "show_header", value: "maybe", wantErr: "not a boolean"},
		{field: "sidebar_width", value: "20px", wantErr: "derived"},
		{field: "colour", value: "red", wantErr: "unknown setting"},
		{field: "menu_button_size", value: "huge", wantErr: "menu_button_size"},
	}

	for _, tt := range tests {
		t.Run(tt.field+"="+tt.value, func(t *testing.T) {
			s := NewSettingsStore(models.DefaultSettings())
			err := s.Set(tt.field, tt.value)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, s.Snapshot())
		})
	}
}

func TestReplaceValidates(t *testing.T) {
	s := NewSettingsStore(models.DefaultSettings())

	next := models.DefaultSettings()
	next.SidebarWidthValue = "30"
	next.SidebarWidth = "ignored"
	require.NoError(t, s.Replace(next))
	assert.Equal(t, "30rem", s.Snapshot().SidebarWidth)

	bad := models.DefaultSettings()
	bad.SidebarVariant = "modal"
	require.Error(t, s.Replace(bad))
	assert.Equal(t, models.VariantSidebar, s.Snapshot().SidebarVariant)
}

func TestNewSettingsStoreFallsBackOnInvalidInput(t *testing.T) {
	bad := models.DefaultSettings()
	bad.SidebarPosition = "top"

	s := NewSettingsStore(bad)
	assert.Equal(t, models.DefaultSettings(), s.Snapshot())
}

func TestSettingsListeners(t *testing.T) {
	s := NewSettingsStore(models.DefaultSettings())

	var got []models.Settings
	cancel := s.Subscribe(func(st models.Settings) { got = append(got, st) })

	s.SetShowIcons(false)
	require.NoError(t, s.SetSidebarWidthUnit(models.UnitPx))
	require.Len(t, got, 2)
	assert.False(t, got[0].ShowIcons)
	assert.Equal(t, "16px", got[1].SidebarWidth)

	require.Error(t, s.SetSidebarPosition("top"))
	assert.Len(t, got, 2, "rejected values do not notify")

	cancel()
	s.SetShowIcons(true)
	assert.Len(t, got, 2)
}

func TestSettingsPersistence(t *testing.T) {
	p := &recordingPersister{}
	s := NewSettingsStore(models.DefaultSettings(), WithSettingsPersister(p))

	s.SetShowFooter(false)
	require.NoError(t, s.SetSidebarWidthValue("18"))
	require.NoError(t, s.Close())

	p.mu.Lock()
	defer p.mu.Unlock()
	require.NotEmpty(t, p.settings)
	last := p.settings[len(p.settings)-1]
	assert.False(t, last.ShowFooter)
	assert.Equal(t, "18rem", last.SidebarWidth)
}

package seeding

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-analytics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/campaign-analytics-api/internal/domain"
	"github.com/vfg2006/campaign-analytics-api/pkg/log"
	"go.uber.org/mock/gomock"
)

const campaignsCSV = "\ufeffname,tipo_campania,fecha_inicio,fecha_fin,universo_zona_metro,impactos_personas,impactos_vehiculos," +
	"frecuencia_calculada,frecuencia_promedio,alcance,nse_ab,nse_c,nse_cmas,nse_d,nse_dmas,nse_e," +
	"edad_0a14,edad_15a19,edad_20a24,edad_25a34,edad_35a44,edad_45a64,edad_65mas,hombres,mujeres\n" +
	"Verano,Exterior,2023-01-01,2023-03-31,5000000,120000,80000,3.5,2.1,45000,10,20,15,25,20,10,5,10,15,20,20,20,10,48,52\n" +
	"Invierno,Digital,2023-11-01,2023-12-31,,,,,,,,,,,,,,,,,,,,,\n" +
	"Verano,Digital,2024-01-01,2024-01-31,1,1,1,1,1,1,1,1,1,1,1,1,1,1,1,1,1,1,1,1,1\n"

const periodsCSV = "name,period,impactos_periodo_personas,impactos_periodo_vehículos\n" +
	"Verano,2023-01,1000,1500-01-01\n" +
	"Verano,2023-02,2000,\n"

const sitesCSV = "name,codigo_del_sitio,tipo_de_mueble,tipo_de_anuncio,estado,municipio,zm," +
	"frecuencia_catorcenal,frecuencia_mensual,impactos_catorcenal,impactos_mensuales,alcance_mensual\n" +
	"Verano,S-001,Billboard,Fijo,Nuevo León,Monterrey,ZM Monterrey,2.5,5,3000,6000,1200.5\n"

// fakeTx executa a função sem banco; o erro de commit simula falha na gravação
type fakeTx struct {
	calls     int
	commitErr error
}

func (f *fakeTx) RunInTransaction(_ context.Context, fn func(*sql.Tx) error) error {
	f.calls++
	if err := fn(nil); err != nil {
		return err
	}
	return f.commitErr
}

type seederMocks struct {
	campaigns *mocks.MockCampaignRepository
	sites     *mocks.MockCampaignSiteRepository
	periods   *mocks.MockCampaignPeriodRepository
	tx        *fakeTx
}

func newTestSeeder(t *testing.T, files fstest.MapFS) (*Seeder, seederMocks) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)

	m := seederMocks{
		campaigns: mocks.NewMockCampaignRepository(ctrl),
		sites:     mocks.NewMockCampaignSiteRepository(ctrl),
		periods:   mocks.NewMockCampaignPeriodRepository(ctrl),
		tx:        &fakeTx{},
	}

	seeder := NewSeeder(m.tx, m.campaigns, m.sites, m.periods, t.TempDir())
	seeder.data = files

	return seeder, m
}

func validFiles() fstest.MapFS {
	return fstest.MapFS{
		CampaignsFile: {Data: []byte(campaignsCSV)},
		PeriodsFile:   {Data: []byte(periodsCSV)},
		SitesFile:     {Data: []byte(sitesCSV)},
	}
}

func TestSeeder_Run(t *testing.T) {
	seeder, m := newTestSeeder(t, validFiles())

	var campaigns []*domain.Campaign
	var periods []*domain.CampaignPeriod
	var sites []*domain.CampaignSite

	m.campaigns.EXPECT().Count(gomock.Any()).Return(0, nil)
	m.campaigns.EXPECT().InsertBatch(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, c []*domain.Campaign) error {
			campaigns = c
			return nil
		})
	m.periods.EXPECT().InsertBatch(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, p []*domain.CampaignPeriod) error {
			periods = p
			return nil
		})
	m.sites.EXPECT().InsertBatch(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, s []*domain.CampaignSite) error {
			sites = s
			return nil
		})

	result, err := seeder.Run(context.Background())

	require.NoError(t, err)
	assert.False(t, result.Skipped)
	assert.NotEmpty(t, result.RunID)
	assert.Equal(t, 2, result.Campaigns)
	assert.Equal(t, 2, result.Periods)
	assert.Equal(t, 1, result.Sites)
	assert.Equal(t, 1, m.tx.calls)

	// primeira ocorrência de um nome duplicado prevalece
	require.Len(t, campaigns, 2)
	assert.Equal(t, "Verano", campaigns[0].Name)
	assert.Equal(t, "Exterior", campaigns[0].CampaignType)
	assert.Equal(t, "2023-03-31", campaigns[0].EndDate.String())
	assert.Equal(t, int64(5000000), campaigns[0].MetroZoneUniverse)
	assert.Equal(t, 52.0, campaigns[0].Women)

	// colunas vazias viram zero
	assert.Equal(t, "Invierno", campaigns[1].Name)
	assert.Zero(t, campaigns[1].PeopleImpacts)
	assert.Zero(t, campaigns[1].NSEAB)

	require.Len(t, periods, 2)
	assert.Equal(t, int64(1500), periods[0].VehicleImpacts)
	assert.Zero(t, periods[1].VehicleImpacts)

	require.Len(t, sites, 1)
	assert.Equal(t, "Billboard", sites[0].FurnitureType)
	assert.Equal(t, "Nuevo León", sites[0].State)
	assert.Equal(t, int64(6000), sites[0].MonthlyImpacts)
	assert.Equal(t, 1200.5, sites[0].MonthlyReach)
}

func TestSeeder_Run_KeepsTextCellsVerbatim(t *testing.T) {
	files := validFiles()
	files[PeriodsFile] = &fstest.MapFile{Data: []byte(
		"name,period,impactos_periodo_personas,impactos_periodo_vehiculos\n" +
			"Verano, 2023-01 , 1000 ,1500-01-01\n")}
	files[SitesFile] = &fstest.MapFile{Data: []byte(
		"name,codigo_del_sitio,tipo_de_mueble,tipo_de_anuncio,estado,municipio,zm," +
			"frecuencia_catorcenal,frecuencia_mensual,impactos_catorcenal,impactos_mensuales,alcance_mensual\n" +
			"Verano,S-001 ,Billboard,Fijo,Nuevo León, Monterrey,ZM Monterrey, 2.5 ,5,3000, 6000,1200.5\n")}
	seeder, m := newTestSeeder(t, files)

	var periods []*domain.CampaignPeriod
	var sites []*domain.CampaignSite

	m.campaigns.EXPECT().Count(gomock.Any()).Return(0, nil)
	m.campaigns.EXPECT().InsertBatch(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	m.periods.EXPECT().InsertBatch(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, p []*domain.CampaignPeriod) error {
			periods = p
			return nil
		})
	m.sites.EXPECT().InsertBatch(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, s []*domain.CampaignSite) error {
			sites = s
			return nil
		})

	_, err := seeder.Run(context.Background())

	require.NoError(t, err)

	// rótulos e textos ficam como no arquivo; números são aparados
	require.Len(t, periods, 1)
	assert.Equal(t, " 2023-01 ", periods[0].Period)
	assert.Equal(t, int64(1000), periods[0].PeopleImpacts)
	assert.Equal(t, int64(1500), periods[0].VehicleImpacts)

	require.Len(t, sites, 1)
	assert.Equal(t, "S-001 ", sites[0].SiteCode)
	assert.Equal(t, " Monterrey", sites[0].Municipality)
	assert.Equal(t, 2.5, sites[0].BiweeklyFrequency)
	assert.Equal(t, int64(6000), sites[0].MonthlyImpacts)
}

func TestSeeder_Run_RejectsDecimalImpacts(t *testing.T) {
	files := validFiles()
	files[PeriodsFile] = &fstest.MapFile{Data: []byte(
		"name,period,impactos_periodo_personas,impactos_periodo_vehiculos\n" +
			"Verano,2023-01,35.0,\n")}
	seeder, m := newTestSeeder(t, files)

	m.campaigns.EXPECT().Count(gomock.Any()).Return(0, nil)

	_, err := seeder.Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "impactos_periodo_personas")
	assert.Contains(t, err.Error(), `"35.0"`)
}

func TestSeeder_Run_SkipsWhenCampaignsExist(t *testing.T) {
	seeder, m := newTestSeeder(t, fstest.MapFS{})

	m.campaigns.EXPECT().Count(gomock.Any()).Return(3, nil)

	result, err := seeder.Run(context.Background())

	require.NoError(t, err)
	assert.True(t, result.Skipped)
	assert.Equal(t, 0, m.tx.calls)
}

func TestSeeder_Run_ParseErrorAbortsBeforeWriting(t *testing.T) {
	files := validFiles()
	files[SitesFile] = &fstest.MapFile{Data: []byte(
		"name,codigo_del_sitio,tipo_de_mueble,tipo_de_anuncio,estado,municipio,zm," +
			"frecuencia_catorcenal,frecuencia_mensual,impactos_catorcenal,impactos_mensuales,alcance_mensual\n" +
			"Verano,S-001,Billboard,Fijo,NL,Monterrey,ZM,2.5,5,3000,muchos,1\n",
	)}
	seeder, m := newTestSeeder(t, files)

	m.campaigns.EXPECT().Count(gomock.Any()).Return(0, nil)

	result, err := seeder.Run(context.Background())

	assert.Nil(t, result)
	require.Error(t, err)
	assert.Contains(t, err.Error(), SitesFile)
	assert.Contains(t, err.Error(), "linha 2")
	assert.Contains(t, err.Error(), "impactos_mensuales")
	assert.Equal(t, 0, m.tx.calls)
}

func TestSeeder_Run_InvalidDate(t *testing.T) {
	files := validFiles()
	files[CampaignsFile] = &fstest.MapFile{Data: []byte(
		"name,tipo_campania,fecha_inicio,fecha_fin,universo_zona_metro,impactos_personas,impactos_vehiculos," +
			"frecuencia_calculada,frecuencia_promedio,alcance,nse_ab,nse_c,nse_cmas,nse_d,nse_dmas,nse_e," +
			"edad_0a14,edad_15a19,edad_20a24,edad_25a34,edad_35a44,edad_45a64,edad_65mas,hombres,mujeres\n" +
			"Verano,Exterior,01/01/2023,2023-03-31,,,,,,,,,,,,,,,,,,,,,\n",
	)}
	seeder, m := newTestSeeder(t, files)

	m.campaigns.EXPECT().Count(gomock.Any()).Return(0, nil)

	_, err := seeder.Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "fecha_inicio")
}

func TestSeeder_Run_MissingColumn(t *testing.T) {
	files := validFiles()
	files[PeriodsFile] = &fstest.MapFile{Data: []byte("name,period\nVerano,2023-01\n")}
	seeder, m := newTestSeeder(t, files)

	m.campaigns.EXPECT().Count(gomock.Any()).Return(0, nil)

	_, err := seeder.Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "impactos_periodo_personas")
}

func TestSeeder_Run_InsertErrorRollsBack(t *testing.T) {
	seeder, m := newTestSeeder(t, validFiles())

	m.campaigns.EXPECT().Count(gomock.Any()).Return(0, nil)
	m.campaigns.EXPECT().InsertBatch(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	m.periods.EXPECT().InsertBatch(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("duplicate key"))

	result, err := seeder.Run(context.Background())

	assert.Nil(t, result)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate key")
	assert.Equal(t, 1, m.tx.calls)
}

func TestSeeder_Run_CountError(t *testing.T) {
	seeder, m := newTestSeeder(t, validFiles())

	m.campaigns.EXPECT().Count(gomock.Any()).Return(0, errors.New("connection refused"))

	_, err := seeder.Run(context.Background())

	require.Error(t, err)
	assert.Equal(t, 0, m.tx.calls)
}

package dub

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/BALAJIRAMESHR/QuadraSystem.net/internal/ffmpeg"
	"github.com/BALAJIRAMESHR/QuadraSystem.net/internal/history"
	"github.com/BALAJIRAMESHR/QuadraSystem.net/internal/job"
	"github.com/BALAJIRAMESHR/QuadraSystem.net/internal/language"
	"github.com/BALAJIRAMESHR/QuadraSystem.net/internal/pipeline"
	"github.com/BALAJIRAMESHR/QuadraSystem.net/internal/rebuild"
	"github.com/BALAJIRAMESHR/QuadraSystem.net/internal/speech"
	"github.com/BALAJIRAMESHR/QuadraSystem.net/internal/storage"
	"github.com/BALAJIRAMESHR/QuadraSystem.net/internal/translate"
)

// Service processes video dubbing jobs: demux audio, recognize speech,
// translate, synthesize, and mux the synthesized track back over the video.
type Service struct {
	recognizer speech.Recognizer
	detector   pipeline.Detector
	translator translate.Translator
	dubber     *rebuild.VideoDubber
	history    *history.Store
	outputPath string
}

func NewService(recognizer speech.Recognizer, detector pipeline.Detector, translator translate.Translator, dubber *rebuild.VideoDubber, hist *history.Store, outputPath string) *Service {
	return &Service{
		recognizer: recognizer,
		detector:   detector,
		translator: translator,
		dubber:     dubber,
		history:    hist,
		outputPath: outputPath,
	}
}

// HandleJob runs one dubbing job end to end. The uploaded video at
// j.FilePath is removed when the job finishes, on success and failure alike.
func (s *Service) HandleJob(ctx context.Context, j *job.Job, updateProgress func(float64)) error {
	var params job.DubParams
	if err := json.Unmarshal(j.Params, &params); err != nil {
		return fmt.Errorf("unmarshal params: %w", err)
	}
	defer os.Remove(j.FilePath)

	if !language.IsSpeechSupported(params.TargetLang) {
		return fmt.Errorf("unsupported target language: %s", params.TargetLang)
	}

	info, err := ffmpeg.Probe(j.FilePath)
	if err != nil {
		return fmt.Errorf("probe video: %w", err)
	}
	if !info.HasAudio() {
		return fmt.Errorf("video has no audio track")
	}

	updateProgress(0.1)

	// Demux the audio track to a scratch waveform; removed on all paths.
	wavPath, err := ffmpeg.ExtractWAV(ctx, j.FilePath)
	if err != nil {
		return fmt.Errorf("extract audio: %w", err)
	}
	defer os.Remove(wavPath)

	wav, err := os.ReadFile(wavPath)
	if err != nil {
		return fmt.Errorf("read audio: %w", err)
	}

	updateProgress(0.3)

	transcript, err := s.recognizer.SpeechToText(ctx, wav, "audio.wav", params.SourceLang)
	if err != nil {
		return fmt.Errorf("speech recognition: %w", err)
	}
	if strings.TrimSpace(transcript) == "" {
		return fmt.Errorf("no speech detected in video")
	}

	updateProgress(0.5)

	sourceLang := params.SourceLang
	if sourceLang == "" || sourceLang == "auto" {
		sourceLang = s.detector.Detect(transcript)
	}

	translated := transcript
	if sourceLang != params.TargetLang {
		translated, err = s.translator.Translate(ctx, transcript, language.NameFor(params.TargetLang))
		if err != nil {
			return fmt.Errorf("translate: %w", err)
		}
	}

	updateProgress(0.7)

	// The on-disk name keeps the upload's collision prefix; the delivery
	// name drops it.
	outPath := filepath.Join(s.outputPath, rebuild.OutputName(filepath.Base(j.FilePath)))
	filename := rebuild.OutputName(storage.OriginalName(j.FilePath))
	if err := s.dubber.Dub(ctx, j.FilePath, translated, params.TargetLang, outPath); err != nil {
		return err
	}

	log.Printf("[dub] dubbed %s -> %s (%s -> %s)", j.FilePath, outPath, sourceLang, params.TargetLang)

	if sourceLang != params.TargetLang {
		s.history.Append(params.Session, history.Record{
			Original:       transcript,
			SourceLanguage: sourceLang,
			TargetLanguage: params.TargetLang,
			Translated:     translated,
		})
	}

	result, _ := json.Marshal(job.DubResult{
		OutputPath: outPath,
		Filename:   filename,
		SourceLang: sourceLang,
		Transcript: transcript,
		Translated: translated,
	})
	j.Result = result

	updateProgress(1.0)
	return nil
}

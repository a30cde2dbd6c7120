package i18n

// Text keys for localization
const (
	KeyBannerTitle = "banner_title"
	KeyAllViaYtDlp = "all_via_ytdlp"
	KeyUpdateHint  = "update_hint"
	KeyFarewell    = "farewell"
	KeyVersion     = "version"

	// Dependency check
	KeyYtDlpInstalled     = "ytdlp_installed"
	KeyYtDlpVersion       = "ytdlp_version"
	KeyYtDlpMissing       = "ytdlp_missing"
	KeyYtDlpInstallHint   = "ytdlp_install_hint"
	KeyYtDlpInstalling    = "ytdlp_installing"
	KeyFFmpegInstalled    = "ffmpeg_installed"
	KeyFFmpegMissing      = "ffmpeg_missing"
	KeyFFmpegRequired     = "ffmpeg_required"
	KeyFFmpegDownloadFrom = "ffmpeg_download_from"
	KeyFFmpegVideoOnly    = "ffmpeg_video_only"

	// Step 1: URL
	KeyStepURL          = "step_url"
	KeyPromptURL        = "prompt_url"
	KeyURLEmpty         = "url_empty"
	KeyURLUnknown       = "url_unknown"
	KeyPlatformDetected = "platform_detected"

	// Metadata
	KeyFetchingInfo     = "fetching_info"
	KeyInfoError        = "info_error"
	KeyInfoPlatform     = "info_platform"
	KeyInfoTitle        = "info_title"
	KeyInfoAuthor       = "info_author"
	KeyInfoDuration     = "info_duration"
	KeyInfoViews        = "info_views"
	KeyInfoLikes        = "info_likes"
	KeyInfoDescription  = "info_description"
	KeyNoDescription    = "no_description"
	KeyInfoUnavailable  = "info_unavailable"
	KeyDefaultTitleYT   = "default_title_youtube"
	KeyDefaultTitleFB   = "default_title_facebook"
	KeyDefaultTitleIG   = "default_title_instagram"
	KeyDefaultAuthorYT  = "default_author_youtube"
	KeyDefaultAuthorFB  = "default_author_facebook"
	KeyDefaultAuthorIG  = "default_author_instagram"
	KeyInfoNotAvailable = "info_not_available"

	// Step 2: destination
	KeyStepDir         = "step_dir"
	KeyDirEnterHint    = "dir_enter_hint"
	KeyPromptDir       = "prompt_dir"
	KeyUsingDefaultDir = "using_default_dir"
	KeyUsingLocalDir   = "using_local_dir"
	KeyDirCreateError  = "dir_create_error"

	// Step 3: file name
	KeyStepName         = "step_name"
	KeyPromptName       = "prompt_name"
	KeyUsingDefaultName = "using_default_name"

	// Platform notes
	KeyNotesTitle      = "notes_title"
	KeyNoteIGPublic    = "note_ig_public"
	KeyNoteIGLimits    = "note_ig_limits"
	KeyNoteFBPublic    = "note_fb_public"
	KeyNoteYTAudio     = "note_yt_audio"
	KeyNoteYTFormats   = "note_yt_formats"
	KeyNoteYTFFmpeg    = "note_yt_ffmpeg"
	KeyNoteYTPrivate   = "note_yt_private"
	KeyConfirmDownload = "confirm_download"

	// Menus
	KeyConnecting         = "connecting"
	KeyModeMenuTitle      = "mode_menu_title"
	KeyModeVideo          = "mode_video"
	KeyModeMP3            = "mode_mp3"
	KeyModeWAV            = "mode_wav"
	KeyPromptMode         = "prompt_mode"
	KeyVideoQualityTitle  = "video_quality_title"
	KeyQuality1080        = "quality_1080"
	KeyQuality720         = "quality_720"
	KeyQuality480         = "quality_480"
	KeyQuality360         = "quality_360"
	KeyQualityBest        = "quality_best"
	KeyQualityWorst       = "quality_worst"
	KeyPromptQuality      = "prompt_quality"
	KeyAudioQualityTitle  = "audio_quality_title"
	KeyAudioBest          = "audio_best"
	KeyAudio320           = "audio_320"
	KeyAudio192           = "audio_192"
	KeyAudio128           = "audio_128"
	KeyPromptAudioQuality = "prompt_audio_quality"
	KeyInvalidOption      = "invalid_option"
	KeyInvalidNumber      = "invalid_number"

	// Download
	KeyStartingDownload   = "starting_download"
	KeyDownloadType       = "download_type"
	KeyDownloadQuality    = "download_quality"
	KeyFFmpegAudioNote    = "ffmpeg_audio_note"
	KeyPublicVideosOnly   = "public_videos_only"
	KeyPublicPostsOnly    = "public_posts_only"
	KeyProgressLabel      = "progress_label"
	KeyDoneVideoYT        = "done_video_youtube"
	KeyDoneMP3YT          = "done_mp3_youtube"
	KeyDoneWAVYT          = "done_wav_youtube"
	KeyDonePlatform       = "done_platform"
	KeyDownloadError      = "download_error"
	KeySavedIn            = "saved_in"
	KeyElapsed            = "elapsed"
	KeyDownloadFailed     = "download_failed"
	KeyDownloadCancelled  = "download_cancelled"
	KeyRevealError        = "reveal_error"
	KeyAnother            = "another"
	KeyOperationCancelled = "operation_cancelled"
	KeyUnexpectedError    = "unexpected_error"
	KeyRetrying           = "retrying"

	// Remediation hints
	KeyHintFFmpegRequired = "hint_ffmpeg_required"
	KeyHintFFmpegInstall  = "hint_ffmpeg_install"
	KeyHintFFmpegVideo    = "hint_ffmpeg_video"
	KeyHintYTPrivate      = "hint_yt_private"
	KeyHintYTAge          = "hint_yt_age"
	KeyHintYTAgeAccount   = "hint_yt_age_account"
	KeyHintYTRegion       = "hint_yt_region"
	KeyHintYTCopyright    = "hint_yt_copyright"
	KeyHintYTLive         = "hint_yt_live"
	KeyHintYTPremium      = "hint_yt_premium"
	KeyHintYTSignIn       = "hint_yt_sign_in"
	KeyHintYTUnknown      = "hint_yt_unknown"
	KeyHintYTSolutions    = "hint_yt_solutions"
	KeyHintYTSolPublic    = "hint_yt_sol_public"
	KeyHintYTSolCopyURL   = "hint_yt_sol_copy_url"
	KeyHintYTSolOther     = "hint_yt_sol_other"
	KeyHintYTSolUpdate    = "hint_yt_sol_update"
	KeyHintFBPrivate      = "hint_fb_private"
	KeyHintFBRemoved      = "hint_fb_removed"
	KeyHintFBDefault      = "hint_fb_default"
	KeyHintIGPrivate      = "hint_ig_private"
	KeyHintIGRemoved      = "hint_ig_removed"
	KeyHintIGRateLimited  = "hint_ig_rate_limited"
	KeyHintIGDefault      = "hint_ig_default"
)
